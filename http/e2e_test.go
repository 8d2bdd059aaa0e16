package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesisdesk/backend/draft"
	"github.com/thesisdesk/backend/monoclient"
	"github.com/thesisdesk/backend/monosrvc"
	"github.com/thesisdesk/backend/picker"
	"github.com/thesisdesk/backend/proglist"
	"github.com/thesisdesk/backend/submit"
)

// putStorage is a stub bucket whose presigned URLs point at a local upload
// server, so the client's direct PUT can be exercised end to end.
type putStorage struct {
	mu      sync.Mutex
	baseURL string
	objects map[string][]byte
}

func (s *putStorage) PresignedPutURL(ctx context.Context, key string, contentType string, ttl time.Duration) (string, time.Time, error) {
	return fmt.Sprintf("%s/%s?sig=test", s.baseURL, key), time.Now().Add(ttl), nil
}

func (s *putStorage) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok, nil
}

func (s *putStorage) PresignedGetURL(ctx context.Context, key string, ttl time.Duration) (string, time.Time, error) {
	return fmt.Sprintf("%s/%s?sig=get", s.baseURL, key), time.Now().Add(ttl), nil
}

func (s *putStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *putStorage) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var keys []string
	for key := range s.objects {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (s *putStorage) handlePut(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	s.mu.Lock()
	s.objects[r.URL.Path[1:]] = body
	s.mu.Unlock()
	w.WriteHeader(http.StatusOK)
}

// TestRegistrationRoundTrip drives the whole sequence through the real
// client against a real server: create record, mint target, PUT the bytes,
// then reconcile the record to stored.
func TestRegistrationRoundTrip(t *testing.T) {
	ctx := context.Background()

	storage := &putStorage{objects: map[string][]byte{}}
	uploads := httptest.NewServer(http.HandlerFunc(storage.handlePut))
	defer uploads.Close()
	storage.baseURL = uploads.URL

	repo := monosrvc.NewInMemRepo()
	srvc := monosrvc.NewMonographSrvc(repo, proglist.NewStaticLister(nil), storage, nil)
	api := httptest.NewServer(NewHttpServer(srvc, proglist.NewStaticLister(nil)).Handler())
	defer api.Close()

	client := monoclient.New(api.URL)
	orch := submit.NewOrchestrator(client)

	pk := picker.New()
	content := make([]byte, 2*1024*1024)
	copy(content, "%PDF-1.4\n")
	require.NoError(t, pk.Select("tesis-x.pdf", content))

	v, fieldErrs := draft.Validate(draft.Draft{
		Title:           "Tesis X",
		PublicationDate: "2023-05-01",
		AuthorID:        "12345678",
		DegreeProgramID: "CS01",
	})
	require.Empty(t, fieldErrs)

	// Programs are fetchable through the same client the selector uses.
	programs, err := client.ListDegreePrograms(ctx)
	require.NoError(t, err)
	require.True(t, proglist.Exists(programs, "CS01"))

	receipt, err := orch.Submit(ctx, v, pk.File())
	require.NoError(t, err)
	require.Equal(t, submit.Done, orch.State())

	// The bytes landed in the bucket under the record's key.
	storage.mu.Lock()
	stored := storage.objects[receipt.Key]
	storage.mu.Unlock()
	assert.Equal(t, content, stored)

	// Reconciliation flips the record to stored.
	report, err := srvc.ReconcileUploads(ctx, time.Hour, false)
	require.NoError(t, err)
	require.Len(t, report.MarkedStored, 1)

	m, err := srvc.GetMonograph(ctx, report.MarkedStored[0])
	require.NoError(t, err)
	assert.Equal(t, monosrvc.StatusStored, m.Status)
	assert.Equal(t, receipt.Record.ID, m.ID.String())
}
