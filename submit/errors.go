package submit

import (
	"errors"
	"fmt"

	"github.com/thesisdesk/backend/draft"
)

// ErrBusy is returned when Submit is called while an attempt is already in
// flight or its outcome has not been reset yet.
var ErrBusy = errors.New("a submission is already in progress")

// ValidationError is a client-side rejection: either per-field messages from
// the draft schema or a missing file. No network call was made.
type ValidationError struct {
	Fields      draft.FieldErrors
	MissingFile bool
}

func (e *ValidationError) Error() string {
	if e.MissingFile {
		return "no file attached"
	}
	return fmt.Sprintf("%d fields failed validation", len(e.Fields))
}

// CreateError means record creation failed. Nothing was persisted server-side;
// a retry is safe.
type CreateError struct {
	cause error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("failed to create monograph record: %v", e.cause)
}

func (e *CreateError) Unwrap() error {
	return e.cause
}

// UploadTargetError means the record was created but no upload destination
// could be obtained. The record exists server-side without its file.
type UploadTargetError struct {
	Record Record
	cause  error
}

func (e *UploadTargetError) Error() string {
	return fmt.Sprintf("failed to obtain upload target for record %s: %v", e.Record.ID, e.cause)
}

func (e *UploadTargetError) Unwrap() error {
	return e.cause
}

// TransferError means the byte transfer to the upload target failed. Like
// UploadTargetError, it leaves a record without its file.
type TransferError struct {
	Record Record
	cause  error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("failed to upload file for record %s: %v", e.Record.ID, e.cause)
}

func (e *TransferError) Unwrap() error {
	return e.cause
}
