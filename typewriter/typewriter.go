// Package typewriter reveals a string one rune per tick.
//
// It is a Bubble Tea component. Every Start opens a new tick chain identified by
// a tag; ticks from an older chain are dropped without being rescheduled, so a
// restart never leaves two chains racing on the same counter.
package typewriter

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultInterval is the delay between two revealed runes.
const DefaultInterval = 100 * time.Millisecond

const cursor = "▌"

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg advances a typewriter by one rune.
type TickMsg struct {
	Time time.Time
	ID   int
	tag  int
}

// Model is the typewriter state. The zero value is not usable; call New.
type Model struct {
	Interval time.Duration
	Style    lipgloss.Style

	text     []rune
	revealed int
	active   bool

	id  int
	tag int
}

// Option configures a Model.
type Option func(*Model)

// WithInterval sets the tick interval.
func WithInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.Interval = d
		}
	}
}

// WithStyle sets the style used by View.
func WithStyle(s lipgloss.Style) Option {
	return func(m *Model) {
		m.Style = s
	}
}

// New returns an idle typewriter.
func New(opts ...Option) Model {
	m := Model{
		Interval: DefaultInterval,
		Style:    lipgloss.NewStyle(),
		id:       nextID(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID identifies this instance among others in the same program.
func (m Model) ID() int {
	return m.id
}

// Text returns the full source text.
func (m Model) Text() string {
	return string(m.text)
}

// Revealed returns how many runes are visible.
func (m Model) Revealed() int {
	return m.revealed
}

// Active reports whether the typewriter accepts ticks.
func (m Model) Active() bool {
	return m.active
}

// Done reports whether the whole text is visible.
func (m Model) Done() bool {
	return m.revealed == len(m.text)
}

// Start resets the reveal to zero and begins typing text from the first rune.
func (m *Model) Start(text string) tea.Cmd {
	m.text = []rune(text)
	m.revealed = 0
	m.active = true
	m.tag++

	if len(m.text) == 0 {
		return nil
	}
	return m.tick(m.id, m.tag)
}

// Stop halts typing. Any tick already scheduled becomes inert.
func (m *Model) Stop() {
	m.active = false
	m.tag++
}

// SetActive starts typing text on an inactive to active flip and stops on the reverse.
// Calling it with an unchanged flag does nothing, unless the text differs.
func (m *Model) SetActive(active bool, text string) tea.Cmd {
	switch {
	case active && (!m.active || text != string(m.text)):
		return m.Start(text)
	case !active && m.active:
		m.Stop()
	}
	return nil
}

// Update handles ticks addressed to this instance and chain.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok {
		return m, nil
	}

	if tick.ID != m.id || tick.tag != m.tag || !m.active {
		return m, nil
	}

	if m.revealed >= len(m.text) {
		return m, nil
	}

	m.revealed++
	if m.revealed == len(m.text) {
		return m, nil
	}
	return m, m.tick(m.id, m.tag)
}

// Visible is the unstyled revealed prefix, with a cursor while typing.
func (m Model) Visible() string {
	out := string(m.text[:m.revealed])
	if m.active && !m.Done() {
		out += cursor
	}
	return out
}

// View renders the visible prefix, with a cursor while typing.
func (m Model) View() string {
	return m.Style.Render(m.Visible())
}

func (m Model) tick(id, tag int) tea.Cmd {
	return tea.Tick(m.Interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id, tag: tag}
	})
}
