package submit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionHappyPath(t *testing.T) {
	sequence := []State{Idle, CreatingRecord, RequestingUploadTarget, Uploading, Done, Idle}
	for i := 0; i < len(sequence)-1; i++ {
		assert.True(t, CanTransition(sequence[i], sequence[i+1]),
			"%s -> %s", sequence[i], sequence[i+1])
	}
}

func TestCanTransitionFailurePaths(t *testing.T) {
	for _, from := range []State{CreatingRecord, RequestingUploadTarget, Uploading} {
		assert.True(t, CanTransition(from, Failed), "%s -> failed", from)
	}
	assert.True(t, CanTransition(Failed, Idle))
	assert.False(t, CanTransition(Idle, Failed), "nothing to fail while idle")
}

func TestCanTransitionForbidsSkipping(t *testing.T) {
	assert.False(t, CanTransition(Idle, Uploading))
	assert.False(t, CanTransition(Idle, Done))
	assert.False(t, CanTransition(CreatingRecord, Uploading))
	assert.False(t, CanTransition(CreatingRecord, Done))
	assert.False(t, CanTransition(Uploading, CreatingRecord))
	assert.False(t, CanTransition(Done, CreatingRecord))
}

func TestValidateTransition(t *testing.T) {
	require.NoError(t, ValidateTransition(Idle, CreatingRecord))
	require.NoError(t, ValidateTransition(Uploading, Uploading), "self transition is a no-op")

	err := ValidateTransition(Done, Uploading)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "done -> uploading")
}

func TestBusyAndTerminal(t *testing.T) {
	busy := map[State]bool{
		Idle:                   false,
		CreatingRecord:         true,
		RequestingUploadTarget: true,
		Uploading:              true,
		Done:                   false,
		Failed:                 false,
	}
	terminal := map[State]bool{
		Idle:                   false,
		CreatingRecord:         false,
		RequestingUploadTarget: false,
		Uploading:              false,
		Done:                   true,
		Failed:                 true,
	}
	for state, want := range busy {
		assert.Equal(t, want, state.Busy(), "busy(%s)", state)
	}
	for state, want := range terminal {
		assert.Equal(t, want, state.Terminal(), "terminal(%s)", state)
	}
}
