package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/thesisdesk/backend/httpjson"
	"github.com/thesisdesk/backend/monosrvc"
)

func (httpserver *HttpServer) listMonographs(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	monos, err := httpserver.monoSrvc.ListMonographs(r.Context())
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	mapMonographsResponse := func(monos []monosrvc.Monograph) []*Monograph {
		response := make([]*Monograph, len(monos))
		for i := range monos {
			response[i] = mapMonograph(&monos[i])
		}
		return response
	}

	httpjson.WriteSuccessJson(w, mapMonographsResponse(monos))
}
