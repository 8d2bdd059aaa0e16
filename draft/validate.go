package draft

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxTitleLen    = 255
	dateLayout     = "2006-01-02"
	minAuthorIDLen = 6
	maxAuthorIDLen = 10
)

// Validate interprets a raw draft against the field schema. It returns either
// the strongly typed value set or a map of field key to the message rendered
// beside that field. Exactly one of the results is meaningful: when the map is
// non-empty the Validated value is the zero value.
//
// Validation is pure and synchronous; nothing here touches the network.
func Validate(d Draft) (Validated, FieldErrors) {
	errs := FieldErrors{}

	title := strings.TrimSpace(d.Title)
	if title == "" {
		errs[FieldTitle] = "title is required"
	} else if utf8.RuneCountInString(title) > maxTitleLen {
		errs[FieldTitle] = fmt.Sprintf("title must be at most %d characters", maxTitleLen)
	}

	var pubDate time.Time
	rawDate := strings.TrimSpace(d.PublicationDate)
	if rawDate == "" {
		errs[FieldPublicationDate] = "publication date is required"
	} else {
		var err error
		pubDate, err = time.Parse(dateLayout, rawDate)
		if err != nil {
			errs[FieldPublicationDate] = "publication date must be in YYYY-MM-DD format"
		}
	}

	authorID := strings.TrimSpace(d.AuthorID)
	if authorID == "" {
		errs[FieldAuthorID] = "author ID is required"
	} else if !isDecimalDigits(authorID) {
		errs[FieldAuthorID] = "author ID must contain only digits"
	} else if len(authorID) < minAuthorIDLen || len(authorID) > maxAuthorIDLen {
		errs[FieldAuthorID] = fmt.Sprintf("author ID must be %d to %d digits",
			minAuthorIDLen, maxAuthorIDLen)
	}

	if strings.TrimSpace(d.DegreeProgramID) == "" {
		errs[FieldDegreeProgramID] = "choose a degree program"
	}

	if len(errs) > 0 {
		return Validated{}, errs
	}

	return Validated{
		Title:           title,
		PublicationDate: pubDate,
		AuthorID:        authorID,
		DegreeProgramID: strings.TrimSpace(d.DegreeProgramID),
	}, nil
}

func isDecimalDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
