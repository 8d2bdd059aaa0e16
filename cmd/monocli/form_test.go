package main

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesisdesk/backend/draft"
	"github.com/thesisdesk/backend/monoclient"
)

// trackedForm is a form whose client points at a hit-counting server, so a
// test can tell whether a submission attempt reached the network.
func trackedForm(t *testing.T) (formModel, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	return newFormModel(monoclient.New(srv.URL), "", ""), &hits
}

func pressEnter(t *testing.T, m formModel) formModel {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd, "a refused submission schedules no work")
	got, ok := updated.(formModel)
	require.True(t, ok)
	return got
}

func TestSubmitWithInvalidDraftStaysLocal(t *testing.T) {
	m, hits := trackedForm(t)
	m.focus = focusSubmit

	got := pressEnter(t, m)

	require.NotEmpty(t, got.fieldErrs)
	assert.Contains(t, got.fieldErrs, draft.FieldTitle)
	assert.Equal(t, int32(0), hits.Load(), "validation failures never reach the network")
}

func TestSubmitWithoutFileStaysLocal(t *testing.T) {
	m, hits := trackedForm(t)
	m.inputs[0].SetValue("Tesis X")
	m.inputs[1].SetValue("2023-05-01")
	m.inputs[2].SetValue("12345678")
	m.chosenCode = "CS01"
	m.focus = focusSubmit

	got := pressEnter(t, m)

	assert.Empty(t, got.fieldErrs)
	assert.True(t, got.pk.Missing(), "the attach pane is flagged instead")
	assert.Equal(t, int32(0), hits.Load())
}
