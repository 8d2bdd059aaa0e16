package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"

	"github.com/thesisdesk/backend/httpjson"
)

func (httpserver *HttpServer) getMonograph(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "monographId"))
	if err != nil {
		httpjson.WriteErrorJson(w, "invalid monograph id", http.StatusBadRequest, "invalid_monograph_id")
		return
	}

	m, err := httpserver.monoSrvc.GetMonograph(r.Context(), id)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapMonograph(m))
}
