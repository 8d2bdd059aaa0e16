package submit

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/thesisdesk/backend/draft"
)

type GatewayMock struct {
	mock.Mock

	// calls records the collaborator invocation order.
	calls []string
}

func (m *GatewayMock) CreateMonograph(ctx context.Context, v draft.Validated) (Record, error) {
	m.calls = append(m.calls, "create")
	args := m.Called(ctx, v)
	return args.Get(0).(Record), args.Error(1)
}

func (m *GatewayMock) RequestUploadTarget(ctx context.Context, title string, recordID string) (UploadTarget, error) {
	m.calls = append(m.calls, "target")
	args := m.Called(ctx, title, recordID)
	return args.Get(0).(UploadTarget), args.Error(1)
}

func (m *GatewayMock) TransferFile(ctx context.Context, target UploadTarget, content []byte) error {
	m.calls = append(m.calls, "transfer")
	args := m.Called(ctx, target, content)
	return args.Error(0)
}
