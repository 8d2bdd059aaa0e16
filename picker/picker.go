// Package picker holds the single PDF a registration attempt uploads. It
// enforces the type and size constraints at selection time and performs no
// network or persistence action of its own.
package picker

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/wailsapp/mimetype"
)

// MaxFileSize is the largest accepted payload, 5 MiB.
const MaxFileSize = 5242880

const pdfMediaType = "application/pdf"

var (
	ErrTooLarge = errors.New("file exceeds the 5 MB limit")
	ErrNotPDF   = errors.New("only PDF files are accepted")
	ErrNoFile   = errors.New("no file provided")
)

// File is a selected payload held in memory until the upload completes.
type File struct {
	Name    string
	Size    int64
	Content []byte
}

// Picker tracks at most one selected file plus the two presentation flags the
// form renders: an active drag-over and the missing-file indicator raised when
// submission is attempted with nothing attached.
type Picker struct {
	file     *File
	dragOver bool
	missing  bool
}

func New() *Picker {
	return &Picker{}
}

// Select validates content and, if it passes, replaces any previously selected
// file (last write wins). A failed selection leaves the prior selection and
// flags untouched.
func (p *Picker) Select(name string, content []byte) error {
	if len(content) == 0 {
		return ErrNoFile
	}
	if int64(len(content)) > MaxFileSize {
		return fmt.Errorf("%s: %w", name, ErrTooLarge)
	}
	if !isPdf(name, content) {
		return fmt.Errorf("%s: %w", name, ErrNotPDF)
	}

	p.file = &File{
		Name:    filepath.Base(name),
		Size:    int64(len(content)),
		Content: content,
	}
	p.missing = false
	return nil
}

// SelectPath reads the file at path and runs it through Select. Terminals
// paste a dropped file as its path, so this is the drop handler of the TUI.
func (p *Picker) SelectPath(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	return p.Select(path, content)
}

// File returns the current selection, or nil when nothing is attached.
func (p *Picker) File() *File {
	return p.file
}

// Clear drops the selection. Called after a successful submission.
func (p *Picker) Clear() {
	p.file = nil
	p.missing = false
}

func (p *Picker) SetDragOver(active bool) {
	p.dragOver = active
}

func (p *Picker) DragOver() bool {
	return p.dragOver
}

// MarkMissing raises the missing-file indicator. The submission orchestration
// calls it when submit is attempted without a selection; any later successful
// Select clears it.
func (p *Picker) MarkMissing() {
	p.missing = true
}

func (p *Picker) Missing() bool {
	return p.missing
}

// isPdf sniffs the content first and falls back to the file extension for
// payloads the detector cannot classify.
func isPdf(name string, content []byte) bool {
	if detected := mimetype.Detect(content); detected != nil {
		if detected.Is(pdfMediaType) {
			return true
		}
		if detected.String() != "application/octet-stream" {
			return false
		}
	}
	return mime.TypeByExtension(filepath.Ext(name)) == pdfMediaType
}
