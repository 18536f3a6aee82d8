// Package toastview renders a single dismissible notification with an
// entrance and exit animation and drag-to-dismiss pointer handling.
//
// The model never removes itself from the screen. When the exit animation
// finishes it calls Options.OnRemove exactly once and stops accepting
// updates; the host owns the collection the toast lives in.
package toastview

import (
	"io"
	"log/slog"
	"math"
	"strconv"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/toast/pkg/toast"
	"tableflip.dev/toast/pkg/tui/events"
	"tableflip.dev/toast/pkg/tui/theme"
	"tableflip.dev/toast/pkg/tui/ui"
)

const (
	// DefaultEnterDelay is the pause before the entrance transition.
	DefaultEnterDelay = 10 * time.Millisecond
	// DefaultExitDelay is how long the exit transition runs before removal.
	DefaultExitDelay = 300 * time.Millisecond
	// DefaultWidth is the box width in cells.
	DefaultWidth = 40

	minWidth = 16
)

// Phase is the interaction phase of a toast.
type Phase int

const (
	// PhaseEntering is the pre-entry state: invisible and pre-positioned.
	PhaseEntering Phase = iota
	// PhaseIdle is the resting state.
	PhaseIdle
	// PhaseDragging follows the pointer along the motion axis.
	PhaseDragging
	// PhaseExiting fades out and never reverts.
	PhaseExiting
)

func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseExiting:
		return "exiting"
	default:
		return "phase(" + strconv.Itoa(int(p)) + ")"
	}
}

// State is the transient visual state of a toast. Offsets are in pixels
// along the motion axis.
type State struct {
	Phase   Phase
	Offset  float64
	Opacity float64

	dragOrigin float64
}

// Metrics converts terminal cells to pixels.
type Metrics struct {
	CellWidth  int
	CellHeight int
}

// DefaultMetrics approximates a common terminal font.
func DefaultMetrics() Metrics {
	return Metrics{CellWidth: 8, CellHeight: 16}
}

func (m Metrics) normalized() Metrics {
	d := DefaultMetrics()
	if m.CellWidth <= 0 {
		m.CellWidth = d.CellWidth
	}
	if m.CellHeight <= 0 {
		m.CellHeight = d.CellHeight
	}
	return m
}

// Scheduler delivers msg after d. The default uses tea.Tick.
type Scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

func tick(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// Options configures a toast model. Zero values select the defaults.
type Options struct {
	ID         events.ComponentID
	OnRemove   func()
	Width      int
	Metrics    Metrics
	EnterDelay time.Duration
	ExitDelay  time.Duration
	Theme      *theme.ToastTheme
	Logger     *slog.Logger
	Schedule   Scheduler
}

type enterMsg struct{ id events.ComponentID }

type removeMsg struct{ id events.ComponentID }

type target int

const (
	targetNone target = iota
	targetBody
	targetClose
)

var lastID int64

func nextID() events.ComponentID {
	return events.ComponentID("toast-" + strconv.FormatInt(atomic.AddInt64(&lastID, 1), 10))
}

// Model is a single toast.
type Model struct {
	id       events.ComponentID
	req      toast.Request
	onRemove func()

	state    State
	pressed  target
	disposed bool

	originX, originY int
	width            int
	geom             geometry

	metrics    Metrics
	enterDelay time.Duration
	exitDelay  time.Duration
	theme      theme.ToastTheme
	logger     *slog.Logger
	schedule   Scheduler
}

var _ ui.Component = (*Model)(nil)

// New constructs a toast for req. Call Init to start the entrance.
func New(req toast.Request, opts Options) *Model {
	m := &Model{
		id:         opts.ID,
		req:        req,
		onRemove:   opts.OnRemove,
		metrics:    opts.Metrics.normalized(),
		enterDelay: opts.EnterDelay,
		exitDelay:  opts.ExitDelay,
		logger:     opts.Logger,
		schedule:   opts.Schedule,
		state: State{
			Phase:   PhaseEntering,
			Opacity: 0,
		},
	}
	if m.id == "" {
		m.id = nextID()
	}
	if m.enterDelay <= 0 {
		m.enterDelay = DefaultEnterDelay
	}
	if m.exitDelay <= 0 {
		m.exitDelay = DefaultExitDelay
	}
	if opts.Theme != nil {
		m.theme = *opts.Theme
	} else {
		m.theme = theme.Default().Toast
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if m.schedule == nil {
		m.schedule = tick
	}
	m.SetSize(opts.Width, 0)
	return m
}

// ID returns the component id carried on emitted events.
func (m *Model) ID() events.ComponentID { return m.id }

// Request returns the request the toast was built from.
func (m *Model) Request() toast.Request { return m.req }

// Init schedules the entrance transition.
func (m *Model) Init() tea.Cmd {
	if m.disposed || m.state.Phase != PhaseEntering {
		return nil
	}
	return m.schedule(m.enterDelay, enterMsg{id: m.id})
}

// Update handles timer and pointer messages.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	if m.disposed {
		return m, nil
	}
	switch msg := msg.(type) {
	case enterMsg:
		if msg.id != m.id {
			return m, nil
		}
		if m.state.Phase == PhaseEntering {
			m.state.Phase = PhaseIdle
			m.state.Opacity = 1
		}
	case removeMsg:
		if msg.id != m.id || m.state.Phase != PhaseExiting {
			return m, nil
		}
		return m, m.remove()
	case tea.MouseClickMsg:
		m.press(msg.Mouse())
	case tea.MouseMotionMsg:
		return m, m.motion(msg.Mouse())
	case tea.MouseReleaseMsg:
		return m, m.release(msg.Mouse())
	}
	return m, nil
}

// Dismiss starts the exit transition. Calls after the first are no-ops.
func (m *Model) Dismiss() tea.Cmd {
	return m.dismiss(events.DismissRequest)
}

// Unmount tears the toast down. Pending timers are discarded when they
// fire and the removal callback is never called.
func (m *Model) Unmount() {
	if m.disposed {
		return
	}
	m.disposed = true
	m.pressed = targetNone
	m.logger.Debug("toast unmounted", "toast", m.id, "phase", m.state.Phase)
}

// Disposed reports whether the toast was removed or unmounted.
func (m *Model) Disposed() bool { return m.disposed }

// Dragging reports whether the pointer currently owns the toast.
func (m *Model) Dragging() bool { return m.state.Phase == PhaseDragging }

// Pressed reports whether a pointer press on the toast is in progress.
func (m *Model) Pressed() bool { return m.pressed != targetNone }

func (m *Model) dismiss(reason events.DismissReason) tea.Cmd {
	if m.disposed || m.state.Phase == PhaseExiting {
		return nil
	}
	m.state.Phase = PhaseExiting
	m.state.Opacity = 0
	m.state.Offset = m.req.Position.ExitOffset()
	m.pressed = targetNone
	m.logger.Debug("toast dismissed", "toast", m.id, "reason", reason)
	return tea.Batch(
		events.ToastDismissCmd(m.id, reason, m.state.Offset),
		m.schedule(m.exitDelay, removeMsg{id: m.id}),
	)
}

func (m *Model) remove() tea.Cmd {
	m.disposed = true
	m.logger.Debug("toast removed", "toast", m.id)
	if m.onRemove != nil {
		m.onRemove()
	}
	return events.ToastRemovedCmd(m.id)
}

func (m *Model) press(mouse tea.Mouse) {
	if mouse.Button != tea.MouseLeft {
		return
	}
	hit := m.hitTest(mouse.X, mouse.Y)
	if hit == targetNone {
		return
	}
	m.pressed = hit
	if !m.req.Draggable {
		return
	}
	switch m.state.Phase {
	case PhaseEntering:
		// Grabbing the toast completes its entrance.
		m.state.Phase = PhaseIdle
		m.state.Opacity = 1
	case PhaseIdle:
	default:
		return
	}
	m.state.dragOrigin = m.pointer(mouse) - m.state.Offset
	m.state.Phase = PhaseDragging
}

func (m *Model) motion(mouse tea.Mouse) tea.Cmd {
	if m.state.Phase != PhaseDragging {
		return nil
	}
	m.drag(m.pointer(mouse))
	if m.hitTest(mouse.X, mouse.Y) != targetNone {
		return nil
	}
	// The pointer left the element.
	m.pressed = targetNone
	return m.endDrag()
}

func (m *Model) release(mouse tea.Mouse) tea.Cmd {
	hit := m.hitTest(mouse.X, mouse.Y)
	pressed := m.pressed
	m.pressed = targetNone

	var cmds []tea.Cmd
	if m.state.Phase == PhaseDragging {
		cmds = append(cmds, m.endDrag())
	}
	if pressed != targetNone && hit != targetNone {
		switch {
		case pressed == targetClose && hit == targetClose:
			cmds = append(cmds, m.dismiss(events.DismissClose))
		case m.req.CloseOnClick:
			cmds = append(cmds, m.dismiss(events.DismissClick))
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) drag(pointer float64) {
	offset := pointer - m.state.dragOrigin
	m.state.Offset = offset
	m.state.Opacity = opacityFor(offset)
}

func (m *Model) endDrag() tea.Cmd {
	m.state.Phase = PhaseIdle
	if math.Abs(m.state.Offset) > toast.DismissDistance {
		return m.dismiss(events.DismissDrag)
	}
	m.state.Offset = 0
	m.state.Opacity = 1
	return nil
}

func opacityFor(offset float64) float64 {
	d := math.Abs(offset)
	if d <= toast.FadeStart {
		return 1
	}
	return math.Max(0, 1-(d-toast.FadeStart)/toast.FadeSpan)
}

// pointer projects a mouse position onto the motion axis, in pixels.
func (m *Model) pointer(mouse tea.Mouse) float64 {
	if m.req.Position.Axis() == toast.AxisVertical {
		return float64(mouse.Y * m.metrics.CellHeight)
	}
	return float64(mouse.X * m.metrics.CellWidth)
}
