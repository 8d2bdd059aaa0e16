// Package draft holds the monograph form's working values and validates them
// against the registration field schema before anything touches the network.
package draft

import "time"

// Draft is the raw form input. Fields hold whatever the user typed last; they
// are only interpreted when Validate runs.
type Draft struct {
	Title           string
	PublicationDate string
	AuthorID        string
	DegreeProgramID string
}

// Defaults seeds a draft with the optional prefill values the surrounding
// application may pass in. Date and degree program always start empty.
func Defaults(title string, authorID string) Draft {
	return Draft{
		Title:    title,
		AuthorID: authorID,
	}
}

// Validated is the strongly typed value set produced by a successful
// validation run. Only Validated drafts are handed to the backend.
type Validated struct {
	Title           string
	PublicationDate time.Time
	AuthorID        string
	DegreeProgramID string
}

// FieldErrors maps a field key to the message rendered beside it. A field
// absent from the map renders its neutral caption instead.
type FieldErrors map[string]string
