package submit

import "fmt"

// State is the submission lifecycle. Transitions are strictly sequential:
// the three in-flight states each start only after the previous step
// resolved, and a failed step jumps straight to Failed.
type State string

const (
	Idle                   State = "idle"
	CreatingRecord         State = "creating_record"
	RequestingUploadTarget State = "requesting_upload_target"
	Uploading              State = "uploading"
	Done                   State = "done"
	Failed                 State = "failed"
)

func CanTransition(from, to State) bool {
	switch from {
	case Idle:
		return to == CreatingRecord
	case CreatingRecord:
		return to == RequestingUploadTarget || to == Failed
	case RequestingUploadTarget:
		return to == Uploading || to == Failed
	case Uploading:
		return to == Done || to == Failed
	case Done:
		return to == Idle
	case Failed:
		return to == Idle
	default:
		return false
	}
}

func ValidateTransition(from, to State) error {
	if from == to {
		return nil
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("invalid submission transition: %s -> %s", from, to)
	}
	return nil
}

// Busy reports whether a network step is in flight. The submit trigger must
// render disabled exactly while this is true.
func (s State) Busy() bool {
	return s == CreatingRecord || s == RequestingUploadTarget || s == Uploading
}

// Terminal reports whether the attempt finished. Reset returns a terminal
// orchestrator to Idle.
func (s State) Terminal() bool {
	return s == Done || s == Failed
}
