package monosrvc

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesisdesk/backend/eventq"
)

func TestReconcileMarksUploadedRecordsStored(t *testing.T) {
	ctx := context.Background()
	srvc, repo, storage, events := newTestSrvc()

	m, err := srvc.CreateMonograph(ctx, validParams())
	require.NoError(t, err)
	storage.objects[m.PdfKey] = true

	report, err := srvc.ReconcileUploads(ctx, time.Hour, false)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Checked)
	assert.Equal(t, []uuid.UUID{m.ID}, report.MarkedStored)
	assert.Empty(t, report.Orphans)

	stored, err := repo.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusStored, stored.Status)

	// registered + stored
	require.Len(t, events.events, 2)
	assert.Equal(t, eventq.EvMonographStored, events.events[1].Type)
}

func TestReconcileReportsOrphansPastGrace(t *testing.T) {
	ctx := context.Background()
	srvc, repo, _, _ := newTestSrvc()

	m, err := srvc.CreateMonograph(ctx, validParams())
	require.NoError(t, err)

	// Jump past the grace window; the PDF never arrived.
	srvc.clock = func() time.Time { return time.Now().Add(2 * time.Hour) }

	report, err := srvc.ReconcileUploads(ctx, time.Hour, false)
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{m.ID}, report.Orphans)
	assert.Empty(t, report.Purged)

	// Without purge the record survives.
	got, err := repo.Get(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, StatusRegistered, got.Status)
}

func TestReconcilePurgesOrphans(t *testing.T) {
	ctx := context.Background()
	srvc, repo, _, _ := newTestSrvc()

	m, err := srvc.CreateMonograph(ctx, validParams())
	require.NoError(t, err)

	srvc.clock = func() time.Time { return time.Now().Add(2 * time.Hour) }

	report, err := srvc.ReconcileUploads(ctx, time.Hour, true)
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{m.ID}, report.Purged)

	got, err := repo.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReconcileLeavesRecentRecordsAlone(t *testing.T) {
	ctx := context.Background()
	srvc, repo, _, _ := newTestSrvc()

	m, err := srvc.CreateMonograph(ctx, validParams())
	require.NoError(t, err)

	// Still inside the grace window: no orphan report, no purge.
	report, err := srvc.ReconcileUploads(ctx, time.Hour, true)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Checked)
	assert.Empty(t, report.Orphans)
	assert.Empty(t, report.Purged)

	got, err := repo.Get(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestReconcileReportsStrayObjects(t *testing.T) {
	ctx := context.Background()
	srvc, _, storage, _ := newTestSrvc()

	m, err := srvc.CreateMonograph(ctx, validParams())
	require.NoError(t, err)
	storage.objects[m.PdfKey] = true

	// An object under the PDF prefix that no record owns.
	stray := "monographs/00000000-0000-0000-0000-000000000bad.pdf"
	storage.objects[stray] = true

	report, err := srvc.ReconcileUploads(ctx, time.Hour, false)
	require.NoError(t, err)

	assert.Equal(t, []string{stray}, report.StrayKeys)
	assert.Empty(t, report.DeletedKeys)
	assert.True(t, storage.objects[stray], "without purge the object survives")
}

func TestReconcilePurgesStrayObjects(t *testing.T) {
	ctx := context.Background()
	srvc, _, storage, _ := newTestSrvc()

	m, err := srvc.CreateMonograph(ctx, validParams())
	require.NoError(t, err)
	storage.objects[m.PdfKey] = true

	stray := "monographs/00000000-0000-0000-0000-000000000bad.pdf"
	storage.objects[stray] = true

	report, err := srvc.ReconcileUploads(ctx, time.Hour, true)
	require.NoError(t, err)

	assert.Equal(t, []string{stray}, report.DeletedKeys)
	assert.False(t, storage.objects[stray])
	assert.True(t, storage.objects[m.PdfKey], "owned objects are left alone")
}

func TestReconcileSkipsStoredRecords(t *testing.T) {
	ctx := context.Background()
	srvc, repo, storage, _ := newTestSrvc()

	m, err := srvc.CreateMonograph(ctx, validParams())
	require.NoError(t, err)
	storage.objects[m.PdfKey] = true

	_, err = srvc.ReconcileUploads(ctx, 0, false)
	require.NoError(t, err)

	report, err := srvc.ReconcileUploads(ctx, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Checked, "stored records are not rechecked")

	got, err := repo.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusStored, got.Status)
}
