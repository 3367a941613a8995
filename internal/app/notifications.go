package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/transcall/transcall/internal/ui"
)

// toastLifetime is how long a notification stays up before auto-dismissing.
const toastLifetime = 5 * time.Second

// Notification is one transient toast. Multiple notifications stack in
// arrival order.
type Notification struct {
	ID      string
	Kind    string // success, error, warning, info
	Message string
}

// notify appends a toast and schedules its auto-dismissal.
func (m *Model) notify(kind, message string) tea.Cmd {
	n := Notification{ID: uuid.NewString(), Kind: kind, Message: message}
	m.notifications = append(m.notifications, n)
	return dismissToastCmd(n.ID)
}

func dismissToastCmd(id string) tea.Cmd {
	return tea.Tick(toastLifetime, func(time.Time) tea.Msg {
		return DismissToastMsg{ID: id}
	})
}

// dismissToast removes the toast with the given id, if still visible.
func (m *Model) dismissToast(id string) {
	for i, n := range m.notifications {
		if n.ID == id {
			m.notifications = append(m.notifications[:i], m.notifications[i+1:]...)
			return
		}
	}
}

// dismissOldestToast removes the oldest visible toast (explicit close).
func (m *Model) dismissOldestToast() {
	if len(m.notifications) > 0 {
		m.notifications = m.notifications[1:]
	}
}

func (m Model) renderNotifications() string {
	if len(m.notifications) == 0 {
		return ""
	}
	var lines []string
	for _, n := range m.notifications {
		lines = append(lines, ui.Toast(n.Kind).Render("▐ ")+n.Message)
	}
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
