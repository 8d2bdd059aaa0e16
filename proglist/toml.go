package proglist

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ReadCatalogFile parses a TOML degree-program catalog:
//
//	[[programs]]
//	code = "CS01"
//	name = "Computer Science"
//
// File order is presentation order.
func ReadCatalogFile(path string) ([]DegreeProgram, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read program catalog: %w", err)
	}
	return parseCatalog(content)
}

func parseCatalog(content []byte) ([]DegreeProgram, error) {
	tomlStruct := struct {
		Programs []struct {
			Code string `toml:"code"`
			Name string `toml:"name"`
		} `toml:"programs"`
	}{}

	err := toml.Unmarshal(content, &tomlStruct)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal program catalog: %w", err)
	}

	programs := make([]DegreeProgram, 0, len(tomlStruct.Programs))
	for _, p := range tomlStruct.Programs {
		if p.Code == "" {
			return nil, fmt.Errorf("program catalog entry without code")
		}
		if p.Name == "" {
			return nil, fmt.Errorf("program %s has no name", p.Code)
		}
		programs = append(programs, DegreeProgram{Code: p.Code, Name: p.Name})
	}

	return programs, nil
}
