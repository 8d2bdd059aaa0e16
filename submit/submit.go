// Package submit runs the two-phase registration sequence: create the
// monograph record, obtain an upload destination keyed off it, and transfer
// the PDF bytes there. The orchestrator owns the state machine the form
// renders from and guarantees the three network steps never overlap or
// reorder.
package submit

import (
	"context"
	"sync"
	"time"

	"github.com/thesisdesk/backend/draft"
	"github.com/thesisdesk/backend/picker"
)

// Record is the server-assigned entity the create step returns. The
// orchestrator holds it only to derive the upload target, and to report which
// record was orphaned when a later step fails.
type Record struct {
	ID    string
	Title string
}

// UploadTarget is an opaque, time-limited write destination bound to one
// record. Single use, never persisted client-side.
type UploadTarget struct {
	URL       string
	Method    string
	Key       string
	ExpiresAt time.Time
}

// Gateway is the remote collaborator contract. TransferFile writes directly
// to the opaque target; it is not routed through the record service.
type Gateway interface {
	CreateMonograph(ctx context.Context, v draft.Validated) (Record, error)
	RequestUploadTarget(ctx context.Context, title string, recordID string) (UploadTarget, error)
	TransferFile(ctx context.Context, target UploadTarget, content []byte) error
}

// Receipt is returned on full success.
type Receipt struct {
	Record Record
	Key    string
}

// Orchestrator drives one submission attempt at a time. A second Submit while
// the state is not Idle returns ErrBusy; the UI additionally disables its
// trigger whenever State().Busy() holds, so the guard is never exercised by a
// well-behaved form.
type Orchestrator struct {
	gw Gateway

	mu      sync.Mutex
	state   State
	failure error
	record  *Record
}

func NewOrchestrator(gw Gateway) *Orchestrator {
	return &Orchestrator{
		gw:    gw,
		state: Idle,
	}
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) Busy() bool {
	return o.State().Busy()
}

// Failure returns the error that drove the orchestrator into Failed, or nil.
func (o *Orchestrator) Failure() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.failure
}

// CreatedRecord returns the record of the current or last attempt, if the
// create step got far enough to produce one. After a post-create failure this
// is the record left on the server without its file.
func (o *Orchestrator) CreatedRecord() *Record {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.record
}

// Reset returns a terminal orchestrator to Idle so the next attempt can run.
// Resetting while a step is in flight is a programming error and is refused.
func (o *Orchestrator) Reset() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := ValidateTransition(o.state, Idle); err != nil {
		return err
	}
	o.state = Idle
	o.failure = nil
	o.record = nil
	return nil
}

// Submit runs the full sequence for one validated draft and one selected
// file. The missing-file check is a hard precondition gate: with a nil file
// the state never leaves Idle and no collaborator is called. On failure the
// caller keeps its draft and file, resets, and may retry the whole sequence;
// a retry after a post-create failure creates a fresh record, and the
// server-side reconciler owns the orphaned one.
func (o *Orchestrator) Submit(ctx context.Context, v draft.Validated, file *picker.File) (Receipt, error) {
	o.mu.Lock()
	if o.state != Idle {
		o.mu.Unlock()
		return Receipt{}, ErrBusy
	}
	if file == nil {
		o.mu.Unlock()
		return Receipt{}, &ValidationError{MissingFile: true}
	}
	o.state = CreatingRecord
	o.record = nil
	o.failure = nil
	o.mu.Unlock()

	record, err := o.gw.CreateMonograph(ctx, v)
	if err != nil {
		return Receipt{}, o.fail(&CreateError{cause: err})
	}

	o.advance(RequestingUploadTarget, &record)

	target, err := o.gw.RequestUploadTarget(ctx, record.Title, record.ID)
	if err != nil {
		return Receipt{}, o.fail(&UploadTargetError{Record: record, cause: err})
	}

	o.advance(Uploading, nil)

	if err := o.gw.TransferFile(ctx, target, file.Content); err != nil {
		return Receipt{}, o.fail(&TransferError{Record: record, cause: err})
	}

	o.advance(Done, nil)

	return Receipt{Record: record, Key: target.Key}, nil
}

func (o *Orchestrator) advance(to State, record *Record) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := ValidateTransition(o.state, to); err != nil {
		// Steps run sequentially under the Idle gate, so this cannot fire
		// unless the machine itself is broken.
		panic(err)
	}
	o.state = to
	if record != nil {
		o.record = record
	}
}

func (o *Orchestrator) fail(reason error) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = Failed
	o.failure = reason
	return reason
}
