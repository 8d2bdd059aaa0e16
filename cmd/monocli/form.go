package main

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thesisdesk/backend/draft"
	"github.com/thesisdesk/backend/lookup"
	"github.com/thesisdesk/backend/monoclient"
	"github.com/thesisdesk/backend/picker"
	"github.com/thesisdesk/backend/submit"
)

// Focus order mirrors the field schema, then the attach pane and the submit
// trigger.
type focusIndex int

const (
	focusTitle focusIndex = iota
	focusDate
	focusAuthor
	focusProgram
	focusAttach
	focusSubmit
	focusCount
)

type programsMsg struct {
	programs lookup.Result
	err      error
}

type submitDoneMsg struct {
	receipt submit.Receipt
	err     error
}

type toast struct {
	title       string
	description string
}

type formModel struct {
	client *monoclient.Client
	orch   *submit.Orchestrator
	pk     *picker.Picker

	defaults draft.Draft

	// text fields in schema order: title, publication date, author ID
	inputs      []textinput.Model
	attachInput textinput.Model

	programs   lookup.Result
	programErr error
	programIdx int
	chosenCode string

	fieldErrs draft.FieldErrors
	attachErr error

	focus      focusIndex
	subSpinner spinner.Model
	toast      *toast
	failure    error
}

func newFormModel(client *monoclient.Client, defaultTitle string, defaultAuthor string) formModel {
	m := formModel{
		client:   client,
		orch:     submit.NewOrchestrator(client),
		pk:       picker.New(),
		defaults: draft.Defaults(defaultTitle, defaultAuthor),
		programs: lookup.Loading(),
	}

	schema := draft.Schema()
	for _, spec := range schema[:3] {
		ti := textinput.New()
		ti.Placeholder = spec.Placeholder
		ti.CharLimit = 255
		ti.Width = 40
		ti.Prompt = ""
		ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9b59b6"))
		m.inputs = append(m.inputs, ti)
	}
	m.inputs[0].SetValue(m.defaults.Title)
	m.inputs[2].SetValue(m.defaults.AuthorID)
	m.inputs[0].Focus()

	ai := textinput.New()
	ai.Placeholder = "drop a PDF here or type its path, then press enter"
	ai.CharLimit = 512
	ai.Width = 52
	ai.Prompt = ""
	m.attachInput = ai

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db"))
	m.subSpinner = s

	return m
}

func (m formModel) Init() tea.Cmd {
	return tea.Batch(m.fetchPrograms(), m.subSpinner.Tick, textinput.Blink)
}

// fetchPrograms loads the degree-program catalog for the selector.
func (m formModel) fetchPrograms() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		programs, err := client.ListDegreePrograms(context.Background())
		if err != nil {
			return programsMsg{programs: lookup.Loaded(nil), err: err}
		}
		return programsMsg{programs: lookup.Loaded(programs)}
	}
}

// submitMonograph runs the whole create/mint/upload sequence off the UI loop.
func (m formModel) submitMonograph(v draft.Validated, file *picker.File) tea.Cmd {
	orch := m.orch
	return func() tea.Msg {
		receipt, err := orch.Submit(context.Background(), v, file)
		return submitDoneMsg{receipt: receipt, err: err}
	}
}

func (m formModel) currentDraft() draft.Draft {
	return draft.Draft{
		Title:           m.inputs[0].Value(),
		PublicationDate: m.inputs[1].Value(),
		AuthorID:        m.inputs[2].Value(),
		DegreeProgramID: m.chosenCode,
	}
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case programsMsg:
		m.programs = msg.programs
		m.programErr = msg.err
		return m, nil

	case submitDoneMsg:
		return m.finishSubmission(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.subSpinner, cmd = m.subSpinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.orch.Busy() {
			// Submission in flight: every control is inert except quitting.
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m formModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "shift+tab", "down", "up":
		// The program selector consumes up/down for choosing an entry.
		if m.focus == focusProgram && (msg.String() == "down" || msg.String() == "up") {
			return m.moveProgramCursor(msg.String() == "down"), nil
		}
		forward := msg.String() == "tab" || msg.String() == "down"
		return m.moveFocus(forward), nil

	case "enter":
		switch m.focus {
		case focusAttach:
			return m.attachFile(), nil
		case focusSubmit:
			return m.startSubmission()
		case focusProgram:
			return m.moveFocus(true), nil
		default:
			return m.moveFocus(true), nil
		}
	}

	return m.updateFocusedInput(msg)
}

func (m formModel) moveFocus(forward bool) formModel {
	if forward {
		m.focus = (m.focus + 1) % focusCount
	} else {
		m.focus = (m.focus - 1 + focusCount) % focusCount
	}

	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.attachInput.Blur()

	switch m.focus {
	case focusTitle, focusDate, focusAuthor:
		m.inputs[m.focus].Focus()
	case focusAttach:
		m.attachInput.Focus()
	}

	// The attach pane counts as the active drop surface while focused.
	m.pk.SetDragOver(m.focus == focusAttach)

	return m
}

func (m formModel) moveProgramCursor(down bool) formModel {
	opts := m.programs.Options()
	if len(opts) == 0 {
		return m
	}
	if down {
		m.programIdx = (m.programIdx + 1) % len(opts)
	} else {
		m.programIdx = (m.programIdx - 1 + len(opts)) % len(opts)
	}
	m.chosenCode = opts[m.programIdx].Value
	return m
}

func (m formModel) attachFile() formModel {
	path := strings.TrimSpace(m.attachInput.Value())
	if path == "" {
		return m
	}
	m.attachErr = m.pk.SelectPath(path)
	return m
}

func (m formModel) startSubmission() (tea.Model, tea.Cmd) {
	m.toast = nil
	m.failure = nil

	d := m.currentDraft()
	v, fieldErrs := draft.Validate(d)
	m.fieldErrs = fieldErrs
	if len(fieldErrs) > 0 {
		return m, nil
	}

	// Hard gate before any network call: no file, no submission.
	file := m.pk.File()
	if file == nil {
		m.pk.MarkMissing()
		return m, nil
	}

	return m, tea.Batch(m.subSpinner.Tick, m.submitMonograph(v, file))
}

func (m formModel) finishSubmission(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// Draft and file stay put so the user can retry the full sequence.
		m.failure = msg.err
		m.orch.Reset()
		return m, nil
	}
	m.failure = nil

	m.toast = &toast{
		title:       "Monograph registered",
		description: "\"" + msg.receipt.Record.Title + "\" and its PDF were stored.",
	}

	// Reset the form back to its defaults.
	m.inputs[0].SetValue(m.defaults.Title)
	m.inputs[1].SetValue("")
	m.inputs[2].SetValue(m.defaults.AuthorID)
	m.attachInput.SetValue("")
	m.chosenCode = ""
	m.programIdx = 0
	m.fieldErrs = nil
	m.attachErr = nil
	m.pk.Clear()
	m.orch.Reset()

	return m, nil
}

func (m formModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle, focusDate, focusAuthor:
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	case focusAttach:
		m.attachInput, cmd = m.attachInput.Update(msg)
	}
	return m, cmd
}
