package proglist

import (
	"net/http"

	"github.com/thesisdesk/backend/srvcerror"
)

const ErrCodeInvalidDegreeProgram = "invalid_degree_program"

func ErrInvalidDegreeProgram() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidDegreeProgram,
		"unknown degree program",
	).SetHttpStatusCode(http.StatusBadRequest)
}
