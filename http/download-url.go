package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"

	"github.com/thesisdesk/backend/httpjson"
)

// mintDownloadURL returns a presigned, time-limited GET URL for a stored
// monograph's PDF. Records whose upload has not arrived yet get a conflict.
func (httpserver *HttpServer) mintDownloadURL(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "monographId"))
	if err != nil {
		httpjson.WriteErrorJson(w, "invalid monograph id", http.StatusBadRequest, "invalid_monograph_id")
		return
	}

	target, err := httpserver.monoSrvc.MintDownloadURL(r.Context(), id)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapUploadTarget(target))
}
