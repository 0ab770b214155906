package preview

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/ava-vibe/ava/typewriter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	DefaultFPS   = 60
	DefaultWidth = 48

	initialScale = 0.95

	// Spring stiffness per second of block duration. A critically damped
	// spring is within 0.2% of rest after 8/frequency seconds.
	springSettle  = 8.0
	springDamping = 1.0
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg advances the reveal by one frame.
type FrameMsg struct {
	ID  int
	tag int
}

type motion struct {
	spring   harmonica.Spring
	scale    float64
	velocity float64
}

// Model animates a Layout. Time is virtual: every frame advances the reveal by
// a fixed step, so a given number of frames always shows the same picture.
type Model struct {
	Width int

	layout     Layout
	elapsed    time.Duration
	fps        int
	step       time.Duration
	motion     []motion
	typewriter typewriter.Model
	running    bool

	id  int
	tag int
}

// Option configures a Model.
type Option func(*Model)

// WithFPS sets the frame rate.
func WithFPS(fps int) Option {
	return func(m *Model) {
		if fps > 0 {
			m.fps = fps
		}
	}
}

// WithWidth sets the drawing width in cells.
func WithWidth(width int) Option {
	return func(m *Model) {
		if width > 0 {
			m.Width = width
		}
	}
}

// WithTypewriterInterval sets the delay between typed runes of the engage title.
func WithTypewriterInterval(d time.Duration) Option {
	return func(m *Model) {
		m.typewriter = typewriter.New(typewriter.WithInterval(d))
	}
}

// New returns a model showing the placeholder.
func New(opts ...Option) Model {
	m := Model{
		Width:      DefaultWidth,
		fps:        DefaultFPS,
		typewriter: typewriter.New(),
		layout:     Layout{Placeholder: Placeholder},
		id:         nextID(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.step = time.Second / time.Duration(m.fps)
	return m
}

// Layout returns the layout being shown.
func (m Model) Layout() Layout {
	return m.layout
}

// Elapsed is the virtual time since the reveal started.
func (m Model) Elapsed() time.Duration {
	return m.elapsed
}

// Running reports whether frames are still being scheduled.
func (m Model) Running() bool {
	return m.running
}

// Typewriter exposes the engage title state.
func (m Model) Typewriter() typewriter.Model {
	return m.typewriter
}

// SetLayout replaces the layout and restarts the reveal from the first block.
func (m *Model) SetLayout(layout Layout) tea.Cmd {
	m.layout = layout
	m.elapsed = 0
	m.tag++
	m.motion = make([]motion, len(layout.Blocks))
	for i, block := range layout.Blocks {
		m.motion[i] = motion{
			spring: m.springFor(block.Duration),
			scale:  initialScale,
		}
	}

	if layout.Empty() {
		m.running = false
		m.typewriter.Stop()
		return nil
	}

	m.running = true
	m.typewriter.Style = m.engageTextStyle()

	return tea.Batch(
		m.frame(),
		m.typewriter.Start(layout.Title),
	)
}

// Replay restarts the reveal of the current layout.
func (m *Model) Replay() tea.Cmd {
	return m.SetLayout(m.layout)
}

// Visible reports whether block i has started revealing.
func (m Model) Visible(i int) bool {
	return m.elapsed > m.layout.Blocks[i].Delay
}

// Opacity of block i in [0, 1] with an ease-out curve.
func (m Model) Opacity(i int) float64 {
	block := m.layout.Blocks[i]
	if m.elapsed <= block.Delay {
		return 0
	}

	p := float64(m.elapsed-block.Delay) / float64(block.Duration)
	if p >= 1 {
		return 1
	}
	return 1 - math.Pow(1-p, 3)
}

// Scale of block i, from 0.95 up to 1. It reaches 1 together with the opacity.
func (m Model) Scale(i int) float64 {
	block := m.layout.Blocks[i]
	switch {
	case m.elapsed <= block.Delay:
		return initialScale
	case m.elapsed >= block.Delay+block.Duration:
		return 1
	}
	return math.Min(m.motion[i].scale, 1)
}

// Update handles frame and typewriter ticks.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.ID != m.id || msg.tag != m.tag || !m.running {
			return m, nil
		}
		return m.advance()
	case typewriter.TickMsg:
		var cmd tea.Cmd
		m.typewriter, cmd = m.typewriter.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) advance() (Model, tea.Cmd) {
	m.elapsed += m.step
	m.motion = append([]motion(nil), m.motion...)

	for i, block := range m.layout.Blocks {
		mv := &m.motion[i]
		switch {
		case m.elapsed < block.Delay:
		case m.elapsed >= block.Delay+block.Duration:
			mv.scale, mv.velocity = 1, 0
		default:
			mv.scale, mv.velocity = mv.spring.Update(mv.scale, mv.velocity, 1)
		}
	}

	if m.elapsed >= m.layout.Total() {
		m.running = false
		return m, nil
	}

	return m, m.frame()
}

// Settle jumps to the end of the reveal.
func (m *Model) Settle() {
	m.elapsed = m.layout.Total()
	for i := range m.motion {
		m.motion[i].scale, m.motion[i].velocity = 1, 0
	}
	m.running = false
	m.tag++
}

func (m Model) frame() tea.Cmd {
	id, tag := m.id, m.tag
	return tea.Tick(m.step, func(time.Time) tea.Msg {
		return FrameMsg{ID: id, tag: tag}
	})
}

// springFor returns a spring that brings the scale to rest within d.
func (m Model) springFor(d time.Duration) harmonica.Spring {
	seconds := max(d.Seconds(), m.step.Seconds())
	return harmonica.NewSpring(harmonica.FPS(m.fps), springSettle/seconds, springDamping)
}

func (m Model) fitTitle(title string) string {
	limit := m.Width - 4
	if limit < 1 || runewidth.StringWidth(title) <= limit {
		return title
	}
	return runewidth.Truncate(title, limit, "…")
}

func (m Model) engageTextStyle() lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	for _, block := range m.layout.Blocks {
		if block.Group == GroupEngage {
			s = s.Foreground(block.Ink.Lipgloss()).Background(block.Fill.Lipgloss())
		}
	}
	return s
}
