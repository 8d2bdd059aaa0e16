package monosrvc

import (
	"fmt"
	"net/http"

	"github.com/thesisdesk/backend/srvcerror"
)

const ErrCodeTitleEmpty = "title_empty"

func newErrTitleEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTitleEmpty,
		"title must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeTitleTooLong = "title_too_long"

func newErrTitleTooLong(maxLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTitleTooLong,
		fmt.Sprintf("title must be at most %d characters long", maxLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodePublicationDateMissing = "publication_date_missing"

func newErrPublicationDateMissing() *srvcerror.Error {
	return srvcerror.New(
		ErrCodePublicationDateMissing,
		"publication date is required",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeAuthorIDInvalid = "author_id_invalid"

func newErrAuthorIDInvalid() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAuthorIDInvalid,
		"author ID must be 6 to 10 decimal digits",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeMonographNotFound = "monograph_not_found"

func newErrMonographNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeMonographNotFound,
		"monograph was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodePdfNotStored = "pdf_not_stored"

func newErrPdfNotStored() *srvcerror.Error {
	return srvcerror.New(
		ErrCodePdfNotStored,
		"the monograph's PDF has not been stored yet",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeTitleMismatch = "title_mismatch"

func newErrTitleMismatch() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTitleMismatch,
		"title does not match the monograph record",
	).SetHttpStatusCode(http.StatusBadRequest)
}
