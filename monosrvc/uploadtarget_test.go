package monosrvc

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesisdesk/backend/srvcerror"
)

func TestMintUploadTarget(t *testing.T) {
	ctx := context.Background()
	srvc, _, storage, _ := newTestSrvc()

	m, err := srvc.CreateMonograph(ctx, validParams())
	require.NoError(t, err)

	target, err := srvc.MintUploadTarget(ctx, m.ID, "Tesis X")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, target.Method)
	assert.Equal(t, m.PdfKey, target.Key)
	assert.Contains(t, target.URL, m.PdfKey)
	assert.WithinDuration(t, time.Now().Add(uploadURLTTL), target.ExpiresAt, 5*time.Second)
	assert.Equal(t, 1, storage.presigns)
}

func TestMintUploadTargetUnknownRecord(t *testing.T) {
	ctx := context.Background()
	srvc, _, storage, _ := newTestSrvc()

	_, err := srvc.MintUploadTarget(ctx, uuid.New(), "")

	srvcErr := &srvcerror.Error{}
	require.True(t, errors.As(err, &srvcErr))
	assert.Equal(t, ErrCodeMonographNotFound, srvcErr.ErrorCode())
	assert.Equal(t, 0, storage.presigns, "no URL minted for a missing record")
}

func TestMintUploadTargetTitleMismatch(t *testing.T) {
	ctx := context.Background()
	srvc, _, storage, _ := newTestSrvc()

	m, err := srvc.CreateMonograph(ctx, validParams())
	require.NoError(t, err)

	_, err = srvc.MintUploadTarget(ctx, m.ID, "Some Other Title")

	srvcErr := &srvcerror.Error{}
	require.True(t, errors.As(err, &srvcErr))
	assert.Equal(t, ErrCodeTitleMismatch, srvcErr.ErrorCode())
	assert.Equal(t, 0, storage.presigns)
}

func TestMintUploadTargetEmptyTitleSkipsCheck(t *testing.T) {
	ctx := context.Background()
	srvc, _, _, _ := newTestSrvc()

	m, err := srvc.CreateMonograph(ctx, validParams())
	require.NoError(t, err)

	_, err = srvc.MintUploadTarget(ctx, m.ID, "")
	require.NoError(t, err)
}
