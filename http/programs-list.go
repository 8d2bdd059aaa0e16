package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/thesisdesk/backend/httpjson"
	"github.com/thesisdesk/backend/proglist"
)

// DegreeProgram is the wire shape of a catalog entry.
type DegreeProgram struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

const programListCacheKey = "degree_program_list"

func (httpserver *HttpServer) listDegreePrograms(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if cached, found := httpserver.cache.Get(programListCacheKey); found {
		if programs, ok := cached.([]DegreeProgram); ok {
			httpjson.WriteSuccessJson(w, programs)
			return
		}
	}

	// Concurrent cache misses share one catalog fetch.
	result, err, _ := httpserver.sfGroup.Do(programListCacheKey, func() (any, error) {
		programs, err := httpserver.programs.ListDegreePrograms(r.Context())
		if err != nil {
			return nil, err
		}

		mapProgramsResponse := func(programs []proglist.DegreeProgram) []DegreeProgram {
			response := make([]DegreeProgram, len(programs))
			for i, p := range programs {
				response[i] = DegreeProgram{Code: p.Code, Name: p.Name}
			}
			return response
		}

		response := mapProgramsResponse(programs)
		httpserver.cache.Set(programListCacheKey, response, 0)
		return response, nil
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, result.([]DegreeProgram))
}
