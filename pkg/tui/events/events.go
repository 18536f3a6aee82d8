package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// DismissReason records what started a toast's exit animation.
type DismissReason string

const (
	// DismissClose is a click on the close control.
	DismissClose DismissReason = "close"
	// DismissClick is a click on the toast body with close-on-click enabled.
	DismissClick DismissReason = "click"
	// DismissDrag is a release past the drag threshold.
	DismissDrag DismissReason = "drag"
	// DismissRequest is a dismissal requested by the host.
	DismissRequest DismissReason = "request"
)

// ToastDismissMsg is emitted when a toast starts exiting.
type ToastDismissMsg struct {
	Component ComponentID
	Reason    DismissReason
	Offset    float64
}

// Describe renders the dismissal in a human-friendly format for logs.
func (m ToastDismissMsg) Describe() string {
	return fmt.Sprintf(`toast:%q reason:%q offset:%.0f`, m.Component, m.Reason, m.Offset)
}

// ToastDismissCmd wraps ToastDismissMsg into a tea.Cmd.
func ToastDismissCmd(component ComponentID, reason DismissReason, offset float64) tea.Cmd {
	return func() tea.Msg {
		return ToastDismissMsg{
			Component: component,
			Reason:    reason,
			Offset:    offset,
		}
	}
}

// ToastRemovedMsg is emitted after a toast handed itself to its removal
// callback. The toast accepts no further updates.
type ToastRemovedMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m ToastRemovedMsg) Describe() string {
	return fmt.Sprintf(`toast:%q`, m.Component)
}

// ToastRemovedCmd wraps ToastRemovedMsg into a tea.Cmd.
func ToastRemovedCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return ToastRemovedMsg{Component: component}
	}
}
