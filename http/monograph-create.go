package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/httplog/v2"

	"github.com/thesisdesk/backend/httpjson"
	"github.com/thesisdesk/backend/monosrvc"
)

func (httpserver *HttpServer) createMonograph(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type createMonographRequest struct {
		Title           string `json:"title"`
		PublicationDate string `json:"publicationDate"`
		AuthorID        string `json:"authorId"`
		DegreeProgramID string `json:"degreeProgramId"`
	}

	var request createMonographRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpjson.WriteErrorJson(w, "invalid request body", http.StatusBadRequest, "invalid_request_body")
		return
	}

	var pubDate time.Time
	if request.PublicationDate != "" {
		var err error
		pubDate, err = time.Parse("2006-01-02", request.PublicationDate)
		if err != nil {
			httpjson.WriteErrorJson(w,
				"publication date must be in YYYY-MM-DD format",
				http.StatusBadRequest, "publication_date_invalid")
			return
		}
	}

	m, err := httpserver.monoSrvc.CreateMonograph(r.Context(), monosrvc.CreateMonographParams{
		Title:           request.Title,
		PublicationDate: pubDate,
		AuthorID:        request.AuthorID,
		DegreeProgramID: request.DegreeProgramID,
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteCreatedJson(w, mapMonograph(m))
}
