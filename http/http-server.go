// Package http exposes the monograph registry over REST: record creation,
// upload-target minting, record reads and the degree-program catalog.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/thesisdesk/backend/monosrvc"
	"github.com/thesisdesk/backend/proglist"
)

type HttpServer struct {
	monoSrvc *monosrvc.MonographSrvc
	programs proglist.Lister
	router   *chi.Mux

	// degree programs change rarely, so GETs are cached briefly and
	// stampedes collapse through the singleflight group
	cache   *cache.Cache
	sfGroup singleflight.Group
}

func NewHttpServer(
	monoSrvc *monosrvc.MonographSrvc,
	programs proglist.Lister,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("thesisdesk", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "https://thesisdesk.example.com"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	server := &HttpServer{
		monoSrvc: monoSrvc,
		programs: programs,
		router:   router,
		cache:    cache.New(30*time.Second, time.Minute),
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

// Handler exposes the router, mainly for httptest.
func (httpserver *HttpServer) Handler() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router
	r.Post("/monographs", httpserver.createMonograph)
	r.Get("/monographs", httpserver.listMonographs)
	r.Get("/monographs/{monographId}", httpserver.getMonograph)
	r.Post("/monographs/{monographId}/upload-url", httpserver.mintUploadURL)
	r.Get("/monographs/{monographId}/download-url", httpserver.mintDownloadURL)
	r.Get("/degree-programs", httpserver.listDegreePrograms)
}
