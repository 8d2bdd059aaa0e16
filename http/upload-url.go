package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"

	"github.com/thesisdesk/backend/httpjson"
	loggerpkg "github.com/thesisdesk/backend/logger"
)

// mintUploadURL returns a presigned, time-limited PUT destination for the
// record's PDF. The client writes the bytes straight to the returned URL; the
// payload never passes through this API.
func (httpserver *HttpServer) mintUploadURL(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "monographId"))
	if err != nil {
		httpjson.WriteErrorJson(w, "invalid monograph id", http.StatusBadRequest, "invalid_monograph_id")
		return
	}

	// Body is optional; when present it carries the title for a sanity check
	// against the record.
	type mintUploadURLRequest struct {
		Title string `json:"title"`
	}
	var request mintUploadURLRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil && err != io.EOF {
		httpjson.WriteErrorJson(w, "invalid request body", http.StatusBadRequest, "invalid_request_body")
		return
	}

	ctx := loggerpkg.WithMonographID(r.Context(), id.String())
	target, err := httpserver.monoSrvc.MintUploadTarget(ctx, id, request.Title)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapUploadTarget(target))
}
