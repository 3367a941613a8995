package app

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/transcall/transcall/internal/api"
	"github.com/transcall/transcall/internal/ui"
)

type loginState struct {
	fields  []field // email, senha
	focus   int     // 0..1 fields, 2 entrar, 3 criar conta
	busy    bool
	errText string
}

func newLoginState() loginState {
	return loginState{
		fields: []field{
			{label: "Email"},
			{label: "Senha", secret: true},
		},
	}
}

func (s loginState) typing() bool { return s.focus < len(s.fields) }

type registerState struct {
	fields  []field // nome, email, organização, senha, confirmar
	focus   int     // 0..4 fields, 5 cadastrar
	busy    bool
	errText string
}

func newRegisterState() registerState {
	return registerState{
		fields: []field{
			{label: "Nome"},
			{label: "Email"},
			{label: "Organização"},
			{label: "Senha", secret: true},
			{label: "Confirmar senha", secret: true},
		},
	}
}

func (s registerState) typing() bool { return s.focus < len(s.fields) }

// validPassword requires 8+ characters mixing upper case, lower case and
// digits.
func validPassword(pw string) bool {
	if len([]rune(pw)) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

func (m Model) keyLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.login
	if s.busy {
		return m, nil
	}

	switch msg.String() {
	case KeyTab, KeyDown:
		s.focus = (s.focus + 1) % 4
		return m, nil
	case KeyShiftTab, KeyUp:
		s.focus = (s.focus + 3) % 4
		return m, nil
	case KeyEnter:
		if s.focus == 3 {
			return m.navigate(PageRegister)
		}
		email := strings.TrimSpace(s.fields[0].value)
		password := s.fields[1].value
		if email == "" || password == "" {
			s.errText = "Preencha email e senha"
			return m, nil
		}
		s.errText = ""
		s.busy = true
		return m, loginCmd(m.client, email, password)
	}

	if s.focus < len(s.fields) {
		s.fields[s.focus].handleKey(msg)
	}
	return m, nil
}

func (m Model) keyRegister(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.register
	if s.busy {
		return m, nil
	}

	switch msg.String() {
	case KeyEsc:
		return m.navigate(PageLogin)
	case KeyTab, KeyDown:
		s.focus = (s.focus + 1) % 6
		return m, nil
	case KeyShiftTab, KeyUp:
		s.focus = (s.focus + 5) % 6
		return m, nil
	case KeyEnter:
		if s.focus < len(s.fields) {
			s.focus++
			return m, nil
		}
		name := strings.TrimSpace(s.fields[0].value)
		email := strings.TrimSpace(s.fields[1].value)
		org := strings.TrimSpace(s.fields[2].value)
		password := s.fields[3].value
		confirm := s.fields[4].value
		switch {
		case name == "" || email == "" || password == "":
			s.errText = "Preencha todos os campos obrigatórios"
		case password != confirm:
			s.errText = "As senhas não coincidem"
		case !validPassword(password):
			s.errText = "A senha deve ter no mínimo 8 caracteres, com letras maiúsculas, minúsculas e números"
		default:
			s.errText = ""
			s.busy = true
			return m, registerCmd(m.client, api.RegisterRequest{
				Name:             name,
				Email:            email,
				Password:         password,
				OrganizationName: org,
			})
		}
		return m, nil
	}

	if s.focus < len(s.fields) {
		s.fields[s.focus].handleKey(msg)
	}
	return m, nil
}

func (m Model) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResultMsg:
		m.login.busy = false
		if !msg.Res.OK {
			m.login.errText = msg.Res.Err
			return m, nil
		}
		m.store.SetSession(msg.Resp.AccessToken, msg.Resp.User)
		m.user = msg.Resp.User
		m2, cmd := m.navigate(PageDashboard)
		toast := m2.notify("success", "Login realizado com sucesso")
		return m2, tea.Batch(cmd, toast)

	case RegisterResultMsg:
		m.register.busy = false
		if !msg.Res.OK {
			m.register.errText = msg.Res.Err
			return m, nil
		}
		m2, cmd := m.navigate(PageLogin)
		toast := m2.notify("success", "Conta criada com sucesso. Faça login para continuar.")
		return m2, tea.Batch(cmd, toast)
	}
	return m, nil
}

const authLabelWidth = 16

func (m Model) viewLogin() string {
	s := m.login
	var b strings.Builder
	b.WriteString("  " + ui.PanelTitleActiveStyle.Render(" Entrar ") + "\n\n")
	for i, f := range s.fields {
		b.WriteString("  " + renderField(f, s.focus == i, authLabelWidth) + "\n")
	}
	if s.errText != "" {
		b.WriteString("\n  " + ui.ErrorTextStyle.Render(s.errText) + "\n")
	}
	b.WriteString("\n  " + renderButton("Entrar", "Entrando...", s.busy, s.focus == 2))
	b.WriteString("  " + renderButton("Criar conta", "", false, s.focus == 3))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewRegister() string {
	s := m.register
	var b strings.Builder
	b.WriteString("  " + ui.PanelTitleActiveStyle.Render(" Criar conta ") + "\n\n")
	for i, f := range s.fields {
		b.WriteString("  " + renderField(f, s.focus == i, authLabelWidth) + "\n")
	}
	if s.errText != "" {
		b.WriteString("\n  " + ui.ErrorTextStyle.Render(s.errText) + "\n")
	}
	b.WriteString("\n  " + renderButton("Cadastrar", "Cadastrando...", s.busy, s.focus == 5))
	b.WriteString("\n")
	return b.String()
}
