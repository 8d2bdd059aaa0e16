package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/thesisdesk/backend/draft"
	"github.com/thesisdesk/backend/submit"
)

var (
	labelStyle    = lipgloss.NewStyle().Bold(true)
	captionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f8c8d"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c"))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#9b59b6"))
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	toastStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2ecc71")).
			Padding(0, 1)
	attachStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)
	attachHotStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#3498db")).
			Padding(0, 1)
)

func (m formModel) View() string {
	s := labelStyle.Render("Register a monograph") + "\n\n"

	schema := draft.Schema()
	for i, spec := range schema[:3] {
		s += m.renderTextField(spec, i)
	}
	s += m.renderProgramField(schema[3])
	s += m.renderAttachPane()
	s += m.renderSubmitRow()

	if m.toast != nil {
		s += "\n" + toastStyle.Render(
			labelStyle.Render(m.toast.title)+"\n"+m.toast.description) + "\n"
	}

	s += "\n" + captionStyle.Render("tab/shift+tab to move, enter to act, esc to quit") + "\n"
	return s
}

func (m formModel) renderTextField(spec draft.FieldSpec, i int) string {
	s := m.cursorFor(focusIndex(i)) + labelStyle.Render(spec.Label) + "\n"
	s += "  " + m.inputs[i].View() + "\n"
	s += "  " + m.renderFieldNote(spec) + "\n\n"
	return s
}

// renderProgramField draws the selector for the three lookup states: a
// non-selectable spinner while loading, a disabled placeholder when the
// catalog is empty, and one entry per program once populated.
func (m formModel) renderProgramField(spec draft.FieldSpec) string {
	s := m.cursorFor(focusProgram) + labelStyle.Render(spec.Label) + "\n"

	switch {
	case m.programs.IsLoading():
		s += "  " + m.subSpinner.View() + disabledStyle.Render(" loading programs...") + "\n"

	case m.programs.IsEmpty():
		note := "no degree programs available"
		if m.programErr != nil {
			note = "could not load degree programs"
		}
		s += "  " + disabledStyle.Render(note) + "\n"

	default:
		for i, opt := range m.programs.Options() {
			line := "  "
			if m.focus == focusProgram && i == m.programIdx {
				line = "> "
			}
			if opt.Value == m.chosenCode {
				line += valueStyle.Render(opt.Label)
			} else {
				line += opt.Label
			}
			s += "  " + line + "\n"
		}
	}

	s += "  " + m.renderFieldNote(spec) + "\n\n"
	return s
}

func (m formModel) renderFieldNote(spec draft.FieldSpec) string {
	if msg, ok := m.fieldErrs[spec.Key]; ok {
		return errorStyle.Render(msg)
	}
	return captionStyle.Render(spec.Caption)
}

func (m formModel) renderAttachPane() string {
	var body string
	if f := m.pk.File(); f != nil {
		body = fmt.Sprintf("%s (%.1f KB)", valueStyle.Render(f.Name), float64(f.Size)/1024)
	} else {
		body = m.attachInput.View()
	}

	style := attachStyle
	if m.pk.DragOver() {
		style = attachHotStyle
	}

	s := m.cursorFor(focusAttach) + labelStyle.Render("PDF file") + "\n"
	s += style.Render(body) + "\n"

	switch {
	case m.pk.Missing():
		s += errorStyle.Render("attach a PDF before submitting") + "\n"
	case m.attachErr != nil:
		s += errorStyle.Render(m.attachErr.Error()) + "\n"
	default:
		s += captionStyle.Render("one PDF, at most 5 MB") + "\n"
	}

	return s + "\n"
}

func (m formModel) renderSubmitRow() string {
	if m.orch.Busy() {
		return fmt.Sprintf("%s %s\n", m.subSpinner.View(), disabledStyle.Render(m.busyLabel()))
	}

	trigger := "[ Register monograph ]"
	if m.focus == focusSubmit {
		trigger = valueStyle.Render(trigger)
	}
	s := m.cursorFor(focusSubmit) + trigger + "\n"

	if m.failure != nil {
		s += errorStyle.Render("submission failed: "+m.failure.Error()) + "\n"
		s += captionStyle.Render("your draft and file were kept, press enter to retry") + "\n"
	}
	return s
}

func (m formModel) busyLabel() string {
	switch m.orch.State() {
	case submit.CreatingRecord:
		return "creating record..."
	case submit.RequestingUploadTarget:
		return "requesting upload destination..."
	case submit.Uploading:
		return "uploading PDF..."
	default:
		return "working..."
	}
}

func (m formModel) cursorFor(f focusIndex) string {
	if m.focus == f {
		return "> "
	}
	return "  "
}
