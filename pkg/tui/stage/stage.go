// Package stage hosts toasts on a full-screen Bubble Tea surface. It owns
// the collection of live toasts and removes each one when its removal
// callback fires.
package stage

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/google/uuid"

	"tableflip.dev/toast/pkg/toast"
	helppanel "tableflip.dev/toast/pkg/tui/components/help"
	"tableflip.dev/toast/pkg/tui/components/toastview"
	"tableflip.dev/toast/pkg/tui/events"
	"tableflip.dev/toast/pkg/tui/theme"
	"tableflip.dev/toast/pkg/tui/ui/overlay"
)

// Options configures the stage.
type Options struct {
	// Template seeds toasts spawned from the keyboard.
	Template toast.Request
	// Initial toasts are mounted by Init.
	Initial []toast.Request
	// Toast carries the shared component settings. ID and OnRemove are
	// assigned per toast.
	Toast toastview.Options

	// Interactive enables the spawn and position keys.
	Interactive bool
	// QuitWhenEmpty ends the program once the last toast is removed.
	QuitWhenEmpty bool

	MarginX int
	MarginY int

	Theme  *theme.Theme
	Logger *slog.Logger
	NewID  func() string
}

// Model is the stage's Bubble Tea model.
type Model struct {
	opts   Options
	theme  theme.Theme
	logger *slog.Logger
	keys   keyMap
	help   help.Model

	width  int
	height int

	position toast.Position
	toasts   []*toastview.Model
	captured events.ComponentID
	removed  int
	quitting bool

	panel     *helppanel.Model
	showPanel bool
}

// New constructs a stage.
func New(opts Options) *Model {
	m := &Model{
		opts:     opts,
		keys:     newKeyMap(opts.Interactive),
		help:     help.New(),
		position: opts.Template.Position,
	}
	if opts.Theme != nil {
		m.theme = *opts.Theme
	} else {
		m.theme = theme.Default()
	}
	m.logger = opts.Logger
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if m.opts.NewID == nil {
		m.opts.NewID = uuid.NewString
	}
	if m.position == "" {
		m.position = toast.PositionTopRight
	}
	return m
}

// Init mounts the initial toasts.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, req := range m.opts.Initial {
		cmds = append(cmds, m.Spawn(req))
	}
	return tea.Batch(cmds...)
}

// Update routes input to toasts and handles stage keys.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.record(msg)

	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
	case tea.KeyMsg:
		if m.showPanel {
			cmds = append(cmds, m.handlePanelKey(msg))
			break
		}
		cmds = append(cmds, m.handleKey(msg))
	case tea.MouseClickMsg:
		cmds = append(cmds, m.routePress(msg))
	case tea.MouseMotionMsg:
		cmds = append(cmds, m.routeCaptured(msg))
	case tea.MouseReleaseMsg:
		cmds = append(cmds, m.routeCaptured(msg))
	case tea.MouseWheelMsg:
		if m.showPanel {
			_, cmd := m.panel.Update(msg)
			cmds = append(cmds, cmd)
		}
	default:
		// Removal callbacks may shrink m.toasts while we iterate.
		for _, t := range slices.Clone(m.toasts) {
			_, cmd := t.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if m.quitting {
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Batch(cmds...)
}

// View renders the background with every live toast composed on top.
func (m *Model) View() (string, *tea.Cursor) {
	if m.width == 0 || m.height == 0 {
		return "Resizing…", nil
	}
	view := m.background()
	for _, t := range m.toasts {
		view = overlay.Compose(view, m.width, m.height, t.View(), t.Placement(m.opts.MarginX, m.opts.MarginY))
	}
	if m.showPanel && m.panel != nil {
		view = overlay.Compose(view, m.width, m.height, m.panel.View(), overlay.Placement{
			Horizontal: lipgloss.Center,
			Vertical:   lipgloss.Center,
		})
	}
	return view, nil
}

// Spawn mounts a toast for req and returns its entrance command.
func (m *Model) Spawn(req toast.Request) tea.Cmd {
	id := events.ComponentID(m.opts.NewID())
	opts := m.opts.Toast
	opts.ID = id
	opts.OnRemove = func() { m.remove(id) }
	if opts.Logger == nil {
		opts.Logger = m.logger
	}
	if opts.Theme == nil {
		opts.Theme = &m.theme.Toast
	}
	t := toastview.New(req, opts)
	m.place(t)
	m.toasts = append(m.toasts, t)
	m.logger.Debug("toast mounted", "toast", id, "kind", req.Kind, "position", req.Position)
	return t.Init()
}

// DismissAll starts the exit transition of every live toast.
func (m *Model) DismissAll() tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range m.toasts {
		cmds = append(cmds, t.Dismiss())
	}
	return tea.Batch(cmds...)
}

// Clear unmounts every toast immediately. Their removal callbacks never run.
func (m *Model) Clear() {
	for _, t := range m.toasts {
		t.Unmount()
	}
	m.toasts = nil
	m.captured = ""
}

// Toasts returns the ids of the live toasts, oldest first.
func (m *Model) Toasts() []events.ComponentID {
	ids := make([]events.ComponentID, 0, len(m.toasts))
	for _, t := range m.toasts {
		ids = append(ids, t.ID())
	}
	return ids
}

// Removed counts toasts that completed their exit.
func (m *Model) Removed() int { return m.removed }

func (m *Model) remove(id events.ComponentID) {
	m.toasts = slices.DeleteFunc(m.toasts, func(t *toastview.Model) bool {
		return t.ID() == id
	})
	if m.captured == id {
		m.captured = ""
	}
	m.removed++
	if m.opts.QuitWhenEmpty && len(m.toasts) == 0 {
		m.quitting = true
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return nil
	case key.Matches(msg, m.keys.DismissAll):
		return m.DismissAll()
	case key.Matches(msg, m.keys.Clear):
		m.Clear()
		if m.opts.QuitWhenEmpty {
			m.quitting = true
		}
		return nil
	case key.Matches(msg, m.keys.Position):
		m.position = m.position.Next()
		return nil
	case key.Matches(msg, m.keys.Help):
		m.togglePanel()
		return nil
	}

	kinds := []struct {
		binding key.Binding
		kind    toast.Kind
	}{
		{m.keys.Success, toast.KindSuccess},
		{m.keys.Error, toast.KindError},
		{m.keys.Info, toast.KindInfo},
		{m.keys.Warning, toast.KindWarning},
		{m.keys.Default, toast.KindDefault},
	}
	for _, k := range kinds {
		if key.Matches(msg, k.binding) {
			return m.Spawn(m.request(k.kind))
		}
	}
	return nil
}

func (m *Model) handlePanelKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return nil
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Close):
		m.togglePanel()
		return nil
	}
	_, cmd := m.panel.Update(msg)
	return cmd
}

// PanelOpen reports whether the help panel is shown.
func (m *Model) PanelOpen() bool { return m.showPanel }

func (m *Model) togglePanel() {
	m.showPanel = !m.showPanel
	if m.showPanel {
		m.sizePanel()
	}
}

func (m *Model) sizePanel() {
	w, h := m.width*2/3, m.height*2/3
	if m.panel == nil {
		m.panel = helppanel.New(w, h)
		return
	}
	m.panel.SetSize(w, h)
}

func (m *Model) request(kind toast.Kind) toast.Request {
	req := m.opts.Template
	req.Kind = kind
	req.Position = m.position
	if req.Title == "" {
		req.Title = sampleTitles[kind]
	}
	if req.Description == "" {
		req.Description = fmt.Sprintf("Shown at %s. Drag it away or click to close.", m.position)
	}
	return req
}

var sampleTitles = map[toast.Kind]string{
	toast.KindSuccess: "Changes saved",
	toast.KindError:   "Upload failed",
	toast.KindInfo:    "New version available",
	toast.KindWarning: "Disk almost full",
	toast.KindDefault: "Heads up",
}

// routePress hands a press to the topmost toast under the pointer, which
// then receives motion and release until the button goes up.
func (m *Model) routePress(msg tea.MouseClickMsg) tea.Cmd {
	mouse := msg.Mouse()
	for i := len(m.toasts) - 1; i >= 0; i-- {
		t := m.toasts[i]
		if !t.Contains(mouse.X, mouse.Y) {
			continue
		}
		m.captured = t.ID()
		_, cmd := t.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) routeCaptured(msg tea.Msg) tea.Cmd {
	if m.captured == "" {
		return nil
	}
	for _, t := range m.toasts {
		if t.ID() != m.captured {
			continue
		}
		_, cmd := t.Update(msg)
		if !t.Pressed() && !t.Dragging() {
			m.captured = ""
		}
		return cmd
	}
	return nil
}

func (m *Model) layout() {
	for _, t := range m.toasts {
		m.place(t)
	}
	if m.showPanel {
		m.sizePanel()
	}
}

func (m *Model) place(t *toastview.Model) {
	w, h := t.Size()
	placement := toastview.PlacementFor(t.Request().Position, m.opts.MarginX, m.opts.MarginY)
	t.SetOrigin(overlay.Origin(m.width, m.height, w, h, placement))
}

func (m *Model) background() string {
	header := m.theme.Toast.Title.Render("toast")
	status := m.theme.Footer.Status.Render(fmt.Sprintf("position %s · %d live · %d removed", m.position, len(m.toasts), m.removed))
	footer := m.theme.Footer.Help.Render(m.help.View(m.keys))

	body := lipgloss.JoinVertical(lipgloss.Left, header, status)
	bodyHeight := lipgloss.Height(body)
	gap := m.height - bodyHeight - lipgloss.Height(footer)
	if gap < 0 {
		gap = 0
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(body + strings.Repeat("\n", gap+1) + footer)
}

func (m *Model) record(msg tea.Msg) {
	d, ok := msg.(interface{ Describe() string })
	if !ok {
		return
	}
	m.logger.Info(fmt.Sprintf("%T", msg), "detail", d.Describe())
}
