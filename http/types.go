package http

import (
	"time"

	"github.com/thesisdesk/backend/monosrvc"
)

// Monograph is the wire shape of a registry record.
type Monograph struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	PublicationDate string    `json:"publicationDate"`
	AuthorID        string    `json:"authorId"`
	DegreeProgramID string    `json:"degreeProgramId"`
	PdfKey          string    `json:"pdfKey"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

func mapMonograph(m *monosrvc.Monograph) *Monograph {
	return &Monograph{
		ID:              m.ID.String(),
		Title:           m.Title,
		PublicationDate: m.PublicationDate.Format("2006-01-02"),
		AuthorID:        m.AuthorID,
		DegreeProgramID: m.DegreeProgramID,
		PdfKey:          m.PdfKey,
		Status:          string(m.Status),
		CreatedAt:       m.CreatedAt,
	}
}

// UploadTarget is the wire shape of a minted upload destination.
type UploadTarget struct {
	URL       string    `json:"url"`
	Method    string    `json:"method"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func mapUploadTarget(t *monosrvc.UploadTarget) *UploadTarget {
	return &UploadTarget{
		URL:       t.URL,
		Method:    t.Method,
		Key:       t.Key,
		ExpiresAt: t.ExpiresAt,
	}
}
