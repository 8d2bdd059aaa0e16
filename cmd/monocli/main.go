package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/thesisdesk/backend/monoclient"
)

func main() {
	godotenv.Load()

	apiDefault := os.Getenv("THESISDESK_API")
	if apiDefault == "" {
		apiDefault = "http://localhost:8080"
	}

	api := flag.String("api", apiDefault, "Registry API base URL")
	title := flag.String("title", "", "Prefill the monograph title")
	author := flag.String("author", "", "Prefill the author ID")
	flag.Parse()

	client := monoclient.New(*api)

	p := tea.NewProgram(newFormModel(client, *title, *author))
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}
