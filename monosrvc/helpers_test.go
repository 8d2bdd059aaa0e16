package monosrvc

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/thesisdesk/backend/eventq"
	"github.com/thesisdesk/backend/proglist"
)

// fakeStorage is an in-memory stand-in for the S3 bucket.
type fakeStorage struct {
	objects  map[string]bool
	presigns int
	failPut  error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string]bool{}}
}

func (f *fakeStorage) PresignedPutURL(ctx context.Context, key string, contentType string, ttl time.Duration) (string, time.Time, error) {
	if f.failPut != nil {
		return "", time.Time{}, f.failPut
	}
	f.presigns++
	url := fmt.Sprintf("https://bucket.example.com/%s?sig=test", key)
	return url, time.Now().Add(ttl), nil
}

func (f *fakeStorage) PresignedGetURL(ctx context.Context, key string, ttl time.Duration) (string, time.Time, error) {
	url := fmt.Sprintf("https://bucket.example.com/%s?sig=get", key)
	return url, time.Now().Add(ttl), nil
}

func (f *fakeStorage) Exists(ctx context.Context, key string) (bool, error) {
	return f.objects[key], nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

func (f *fakeStorage) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	for key := range f.objects {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// recordingPublisher captures published events.
type recordingPublisher struct {
	events []eventq.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, ev eventq.Event) error {
	p.events = append(p.events, ev)
	return nil
}

func newTestSrvc() (*MonographSrvc, *InMemRepo, *fakeStorage, *recordingPublisher) {
	repo := NewInMemRepo()
	storage := newFakeStorage()
	events := &recordingPublisher{}
	srvc := NewMonographSrvc(repo, proglist.NewStaticLister(nil), storage, events)
	return srvc, repo, storage, events
}

func validParams() CreateMonographParams {
	return CreateMonographParams{
		Title:           "Tesis X",
		PublicationDate: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		AuthorID:        "12345678",
		DegreeProgramID: "CS01",
	}
}
