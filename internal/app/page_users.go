package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/transcall/transcall/internal/api"
	"github.com/transcall/transcall/internal/format"
	"github.com/transcall/transcall/internal/ui"
	"github.com/transcall/transcall/internal/views"
)

// inviteRoles are the assignable roles in invitation order.
var inviteRoles = []string{"operator", "manager", "admin"}

type usersState struct {
	list     []api.User
	selected int
	loading  bool

	inviting bool
	email    field
	roleIdx  int
	focus    int // 0 email, 1 papel, 2 convidar
	busy     bool
	errText  string
}

func (s usersState) typing() bool { return s.inviting && s.focus == 0 }

func (m Model) keyUsers(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.users

	if s.inviting {
		if s.busy {
			return m, nil
		}
		switch msg.String() {
		case KeyEsc:
			s.inviting = false
			return m, nil
		case KeyTab, KeyDown:
			s.focus = (s.focus + 1) % 3
			return m, nil
		case KeyShiftTab, KeyUp:
			s.focus = (s.focus + 2) % 3
			return m, nil
		case KeyLeft:
			if s.focus == 1 {
				s.roleIdx = (s.roleIdx + len(inviteRoles) - 1) % len(inviteRoles)
			}
			return m, nil
		case KeyRight:
			if s.focus == 1 {
				s.roleIdx = (s.roleIdx + 1) % len(inviteRoles)
			}
			return m, nil
		case KeyEnter:
			email := strings.TrimSpace(s.email.value)
			if email == "" || !strings.Contains(email, "@") {
				s.errText = "Informe um email válido"
				return m, nil
			}
			s.errText = ""
			s.busy = true
			return m, inviteCmd(m.client, email, inviteRoles[s.roleIdx])
		}
		if s.focus == 0 {
			s.email.handleKey(msg)
		}
		return m, nil
	}

	switch msg.String() {
	case KeyUp:
		if s.selected > 0 {
			s.selected--
		}
	case KeyDown:
		if s.selected < len(s.list)-1 {
			s.selected++
		}
	case KeyInvite:
		s.inviting = true
		s.email = field{label: "Email"}
		s.roleIdx = 0
		s.focus = 0
		s.errText = ""
	case KeyRefresh:
		s.loading = true
		return m, usersCmd(m.client)
	}
	return m, nil
}

func (m Model) updateUsers(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &m.users
	switch msg := msg.(type) {
	case UsersLoadedMsg:
		s.loading = false
		if !msg.Res.OK {
			toast := m.notify("error", msg.Res.Err)
			return m, toast
		}
		s.list = msg.Users
		if s.selected >= len(s.list) {
			s.selected = 0
		}

	case InviteResultMsg:
		s.busy = false
		if !msg.Res.OK {
			s.errText = msg.Res.Err
			return m, nil
		}
		s.inviting = false
		message := msg.Resp.Message
		if message == "" {
			message = "Convite enviado com sucesso"
		}
		toast := m.notify("success", message)
		s.loading = true
		return m, tea.Batch(toast, usersCmd(m.client))
	}
	return m, nil
}

func (m Model) viewUsers() string {
	s := m.users
	var b strings.Builder
	b.WriteString("  " + ui.PanelTitleStyle.Render(" Usuários ") + "\n")

	if s.loading && len(s.list) == 0 {
		b.WriteString("  " + ui.DimStyle.Render("Carregando usuários...") + "\n")
		return b.String()
	}

	b.WriteString(views.UsersTable(s.list, s.selected))

	if s.inviting {
		b.WriteString("\n  " + ui.PanelTitleActiveStyle.Render(" Convidar usuário ") + "\n\n")
		b.WriteString("  " + renderField(s.email, s.focus == 0, 8) + "\n")
		role := format.Role(inviteRoles[s.roleIdx])
		roleLine := "Papel:   ◂ " + role + " ▸"
		if s.focus == 1 {
			b.WriteString("  " + ui.FieldLabelActiveStyle.Render(roleLine) + "\n")
		} else {
			b.WriteString("  " + ui.FieldLabelStyle.Render(roleLine) + "\n")
		}
		if s.errText != "" {
			b.WriteString("\n  " + ui.ErrorTextStyle.Render(s.errText) + "\n")
		}
		b.WriteString("\n  " + renderButton("Convidar", "Enviando...", s.busy, s.focus == 2) + "\n")
	}
	return b.String()
}
