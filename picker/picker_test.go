package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pdfBytes(size int) []byte {
	content := make([]byte, size)
	copy(content, "%PDF-1.4\n")
	return content
}

func TestSelectAcceptsPdfWithinLimit(t *testing.T) {
	p := New()

	err := p.Select("/tmp/tesis-x.pdf", pdfBytes(2*1024*1024))
	require.NoError(t, err)

	f := p.File()
	require.NotNil(t, f)
	assert.Equal(t, "tesis-x.pdf", f.Name)
	assert.Equal(t, int64(2*1024*1024), f.Size)
}

func TestSelectRejectsOversizedFile(t *testing.T) {
	p := New()

	// 6 MB PDF is over the 5 MB limit; prior state (absent) is kept.
	err := p.Select("big.pdf", pdfBytes(6*1024*1024))
	require.ErrorIs(t, err, ErrTooLarge)
	assert.Nil(t, p.File())
}

func TestSelectRejectsNonPdf(t *testing.T) {
	p := New()

	err := p.Select("notes.txt", []byte("plain text, definitely not a pdf"))
	require.ErrorIs(t, err, ErrNotPDF)
	assert.Nil(t, p.File())
}

func TestFailedSelectionKeepsPriorFile(t *testing.T) {
	p := New()
	require.NoError(t, p.Select("first.pdf", pdfBytes(100)))

	err := p.Select("too-big.pdf", pdfBytes(MaxFileSize+1))
	require.ErrorIs(t, err, ErrTooLarge)

	f := p.File()
	require.NotNil(t, f)
	assert.Equal(t, "first.pdf", f.Name)
}

func TestSelectReplacesPreviousFile(t *testing.T) {
	p := New()
	require.NoError(t, p.Select("first.pdf", pdfBytes(100)))
	require.NoError(t, p.Select("second.pdf", pdfBytes(200)))

	f := p.File()
	require.NotNil(t, f)
	assert.Equal(t, "second.pdf", f.Name)
	assert.Equal(t, int64(200), f.Size)
}

func TestMissingFlagLifecycle(t *testing.T) {
	p := New()
	assert.False(t, p.Missing())

	p.MarkMissing()
	assert.True(t, p.Missing())

	// A successful selection resolves the missing-file state.
	require.NoError(t, p.Select("tesis.pdf", pdfBytes(100)))
	assert.False(t, p.Missing())
}

func TestFailedSelectionKeepsMissingFlag(t *testing.T) {
	p := New()
	p.MarkMissing()

	err := p.Select("notes.txt", []byte("not a pdf"))
	require.ErrorIs(t, err, ErrNotPDF)
	assert.True(t, p.Missing())
}

func TestClear(t *testing.T) {
	p := New()
	require.NoError(t, p.Select("tesis.pdf", pdfBytes(100)))
	p.MarkMissing()

	p.Clear()
	assert.Nil(t, p.File())
	assert.False(t, p.Missing())
}

func TestDragOverFlag(t *testing.T) {
	p := New()
	assert.False(t, p.DragOver())
	p.SetDragOver(true)
	assert.True(t, p.DragOver())
	p.SetDragOver(false)
	assert.False(t, p.DragOver())
}
