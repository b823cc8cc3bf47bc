// Package tui provides a Bubble Tea terminal user interface for chordlyrics.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/chordlyrics/internal/model"
	"github.com/handiism/chordlyrics/internal/render"
	"github.com/handiism/chordlyrics/internal/transpose"
	"github.com/mattn/go-runewidth"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	chordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))
)

// State represents the current UI state.
type State int

const (
	StateIdle State = iota
	StateSearching
	StateShowingResults
	StateShowingSong
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSearching:
		return "searching"
	case StateShowingResults:
		return "results"
	case StateShowingSong:
		return "song"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Searcher finds songs for a query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]model.Song, error)
}

// SearchDoneMsg is sent when a search completes.
type SearchDoneMsg struct {
	Query string
	Songs []model.Song
	Err   error
}

// headerLines is the number of rows above the song viewport.
const headerLines = 4

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	viewport  viewport.Model
	searcher  Searcher

	featured []model.Song
	results  []model.Song
	cursor   int
	query    string
	err      error

	// selected song as loaded and the current transposition
	song      model.Song
	semitones int
	notice    string

	// search context
	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new TUI model. featured songs are offered when the
// search box is submitted empty.
func NewModel(searcher Searcher, featured []model.Song) Model {
	ti := textinput.New()
	ti.Placeholder = "Song, artist or album (Artist - Title searches online)"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateIdle,
		textInput: ti,
		spinner:   sp,
		viewport:  viewport.New(80, 20),
		searcher:  searcher,
		featured:  featured,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// State returns the current UI state.
func (m Model) State() State {
	return m.state
}

// Semitones returns the transposition applied to the displayed song.
func (m Model) Semitones() int {
	return m.semitones
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerLines-4, 3)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			return m, tea.Quit
		}
		var cmd tea.Cmd
		var handled bool
		m, cmd, handled = m.handleKey(msg)
		if handled {
			return m, cmd
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case SearchDoneMsg:
		if m.state != StateSearching || msg.Query != m.query {
			return m, nil
		}
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			return m, nil
		}
		m.showResults(msg.Songs)
		return m, nil
	}

	if m.state == StateIdle {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKey applies the key bindings of the current state. The last result
// is false when the key should fall through to the text input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	key := msg.String()

	switch m.state {
	case StateIdle:
		switch key {
		case "esc":
			return m, tea.Quit, true
		case "enter":
			query := strings.TrimSpace(m.textInput.Value())
			if query == "" {
				m.showResults(m.featured)
				return m, nil, true
			}
			m.state = StateSearching
			m.query = query
			return m, tea.Batch(m.searchCmd(query), m.spinner.Tick), true
		}

	case StateSearching:
		if key == "esc" {
			m.cancel()
			m.ctx, m.cancel = context.WithCancel(context.Background())
			m.query = ""
			m.state = StateIdle
			return m, nil, true
		}
		return m, nil, true

	case StateShowingResults:
		switch key {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
		case "enter":
			if len(m.results) > 0 {
				m.openSong(m.results[m.cursor])
			}
		case "esc":
			m.state = StateIdle
			m.textInput.Focus()
		case "q":
			return m, tea.Quit, true
		}
		return m, nil, true

	case StateShowingSong:
		switch key {
		case "+", "=", "right", "l":
			m.semitones++
			m.refreshSong()
		case "-", "_", "left", "h":
			m.semitones--
			m.refreshSong()
		case "0":
			m.semitones = 0
			m.refreshSong()
		case "esc", "backspace":
			m.state = StateShowingResults
		case "q":
			return m, tea.Quit, true
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd, true
		}
		return m, nil, true

	case StateError:
		switch key {
		case "esc", "r", "enter":
			m.state = StateIdle
			m.err = nil
			m.textInput.Focus()
		case "q":
			return m, tea.Quit, true
		}
		return m, nil, true
	}

	return m, nil, false
}

func (m *Model) showResults(songs []model.Song) {
	m.results = songs
	m.cursor = 0
	m.state = StateShowingResults
	m.textInput.Blur()
}

func (m *Model) openSong(song model.Song) {
	m.song = song
	m.semitones = 0
	m.state = StateShowingSong
	m.refreshSong()
	m.viewport.GotoTop()
}

// refreshSong transposes the selected song and updates the viewport.
// Songs whose key cannot be transposed are shown unchanged with a notice.
func (m *Model) refreshSong() {
	m.notice = ""
	song, err := transpose.Song(m.song, m.semitones)
	if errors.Is(err, transpose.ErrInvalidKey) && m.semitones != 0 {
		m.notice = fmt.Sprintf("Key %q cannot be transposed; showing original chords", m.song.Key)
	}
	m.viewport.SetContent(songContent(song))
}

// searchCmd runs the search off the UI goroutine.
func (m Model) searchCmd(query string) tea.Cmd {
	ctx := m.ctx
	searcher := m.searcher
	return func() tea.Msg {
		if searcher == nil {
			return SearchDoneMsg{Query: query, Err: errors.New("search is not available")}
		}
		songs, err := searcher.Search(ctx, query)
		return SearchDoneMsg{Query: query, Songs: songs, Err: err}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("♪ Chord Lyrics"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Lyrics with guitar chords"))
	b.WriteString("\n\n")

	switch m.state {
	case StateIdle:
		b.WriteString(m.viewIdle())
	case StateSearching:
		b.WriteString(m.viewSearching())
	case StateShowingResults:
		b.WriteString(m.viewResults())
	case StateShowingSong:
		b.WriteString(m.viewSong())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewIdle() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Search songs:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	if len(m.featured) > 0 {
		b.WriteString(infoStyle.Render("Featured:"))
		b.WriteString("\n")
		for _, song := range m.featured {
			b.WriteString(fmt.Sprintf("  %s\n", m.truncate(songLabel(song), 4)))
		}
	}

	return b.String()
}

func (m Model) viewSearching() string {
	return m.spinner.View() + " " + subtitleStyle.Render(fmt.Sprintf("Searching for %q...", m.query)) + "\n"
}

func (m Model) viewResults() string {
	var b strings.Builder

	if len(m.results) == 0 {
		b.WriteString(warningStyle.Render("No songs found"))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Try different keywords, or \"Artist - Title\" to look up lyrics online"))
		b.WriteString("\n")
		return b.String()
	}

	plural := "s"
	if len(m.results) == 1 {
		plural = ""
	}
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Found %d song%s", len(m.results), plural)))
	b.WriteString("\n\n")

	for i, song := range m.results {
		label := m.truncate(songLabel(song), 4)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("› " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewSong() string {
	var b strings.Builder

	key := m.song.Key
	if pc, ok := m.song.KeyPitch(); ok {
		key = pc.Shift(m.semitones).String()
	}
	b.WriteString(infoStyle.Render(fmt.Sprintf("Key: %s  Transpose: %+d", key, m.semitones)))
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(warningStyle.Render(m.notice))
	}
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateIdle:
		return "enter: search (empty: featured) • esc: quit"
	case StateSearching:
		return "esc: cancel"
	case StateShowingResults:
		return "↑/↓: select • enter: open • esc: new search • q: quit"
	case StateShowingSong:
		return "+/-: transpose • 0: reset • ↑/↓: scroll • esc: back • q: quit"
	case StateError:
		return "r: new search • q: quit"
	}
	return ""
}

// truncate shortens s to the terminal width minus margin columns.
func (m Model) truncate(s string, margin int) string {
	if m.width <= margin {
		return s
	}
	return runewidth.Truncate(s, m.width-margin, "…")
}

func songLabel(song model.Song) string {
	label := fmt.Sprintf("♪ %s - %s", song.Artist, song.Title)
	if song.Album != "" {
		label += fmt.Sprintf(" (%s)", song.Album)
	}
	return label
}

// songContent renders a song with highlighted chord rows.
func songContent(song model.Song) string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(render.Header(song)))
	b.WriteString("\n")
	for _, line := range song.Lines {
		if row := render.ChordRow(line); row != "" {
			b.WriteString(chordStyle.Render(row))
			b.WriteString("\n")
		}
		b.WriteString(line.Lyrics)
		b.WriteString("\n\n")
	}

	return b.String()
}

// Run starts the TUI application.
func Run(searcher Searcher, featured []model.Song) error {
	p := tea.NewProgram(NewModel(searcher, featured), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
