package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/transcall/transcall/internal/api"
	"github.com/transcall/transcall/internal/format"
	"github.com/transcall/transcall/internal/ui"
)

type settingsSection int

const (
	sectionProfile settingsSection = iota
	sectionOrganization
	sectionAPI
	sectionPreferences
	sectionCount
)

func (s settingsSection) title() string {
	switch s {
	case sectionProfile:
		return "Perfil"
	case sectionOrganization:
		return "Organização"
	case sectionAPI:
		return "Integrações"
	case sectionPreferences:
		return "Preferências"
	}
	return ""
}

var languageOptions = []string{"pt-BR", "en-US"}
var themeOptions = []string{"dark", "light"}

type settingsState struct {
	loading bool
	section settingsSection
	editing bool
	focus   int
	busy    bool
	errText string

	profile api.User
	org     api.Organization
	admin   bool

	profileFields []field // nome, senha atual, nova senha
	orgFields     []field // nome da organização
	apiFields     []field // 4COM key, 4COM url, OpenAI key
	prefs         api.Preferences
}

func newSettingsState(user api.User, admin bool) settingsState {
	return settingsState{
		admin:   admin,
		profile: user,
		profileFields: []field{
			{label: "Nome", value: user.Name},
			{label: "Senha atual", secret: true},
			{label: "Nova senha", secret: true},
		},
		orgFields: []field{
			{label: "Nome da organização"},
		},
		apiFields: []field{
			{label: "Chave da API 4COM", secret: true},
			{label: "URL da API 4COM"},
			{label: "Chave da API OpenAI", secret: true},
		},
		prefs: api.Preferences{
			Language:      "pt-BR",
			Theme:         "dark",
			Notifications: true,
		},
	}
}

func (s settingsState) sectionFields() []field {
	switch s.section {
	case sectionProfile:
		return s.profileFields
	case sectionOrganization:
		return s.orgFields
	case sectionAPI:
		return s.apiFields
	}
	return nil
}

func (s settingsState) typing() bool {
	return s.editing && s.section != sectionPreferences && s.focus < len(s.sectionFields())
}

func (m Model) keySettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.settings
	if s.busy {
		return m, nil
	}

	if !s.editing {
		switch msg.String() {
		case KeyUp, "k":
			if s.section > 0 {
				s.section--
			}
		case KeyDown, "j":
			if s.section < sectionCount-1 {
				s.section++
			}
		case KeyEnter:
			if s.section == sectionOrganization && !s.admin {
				toast := m.notify("warning", "Apenas administradores podem editar a organização")
				return m, toast
			}
			s.editing = true
			s.focus = 0
			s.errText = ""
		}
		return m, nil
	}

	if s.section == sectionPreferences {
		return m.keyPreferences(msg)
	}

	fields := s.sectionFields()
	switch msg.String() {
	case KeyEsc:
		s.editing = false
		return m, nil
	case KeyTab, KeyDown:
		s.focus = (s.focus + 1) % (len(fields) + 1)
		return m, nil
	case KeyShiftTab, KeyUp:
		s.focus = (s.focus + len(fields)) % (len(fields) + 1)
		return m, nil
	case KeyEnter:
		if s.focus < len(fields) {
			s.focus++
			return m, nil
		}
		return m.submitSettings()
	}
	if s.focus < len(fields) {
		switch s.section {
		case sectionProfile:
			s.profileFields[s.focus].handleKey(msg)
		case sectionOrganization:
			s.orgFields[s.focus].handleKey(msg)
		case sectionAPI:
			s.apiFields[s.focus].handleKey(msg)
		}
	}
	return m, nil
}

func (m Model) keyPreferences(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.settings
	switch msg.String() {
	case KeyEsc:
		s.editing = false
	case KeyTab, KeyDown:
		s.focus = (s.focus + 1) % 5
	case KeyShiftTab, KeyUp:
		s.focus = (s.focus + 4) % 5
	case KeyLeft, KeyRight, " ":
		switch s.focus {
		case 0:
			s.prefs.Language = cycleOption(languageOptions, s.prefs.Language)
		case 1:
			s.prefs.Theme = cycleOption(themeOptions, s.prefs.Theme)
		case 2:
			s.prefs.Notifications = !s.prefs.Notifications
		case 3:
			s.prefs.AutoTranscribe = !s.prefs.AutoTranscribe
		}
	case KeyEnter:
		if s.focus < 4 {
			s.focus++
			return m, nil
		}
		s.busy = true
		return m, preferencesCmd(m.client, s.prefs)
	}
	return m, nil
}

func cycleOption(options []string, current string) string {
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func (m Model) submitSettings() (tea.Model, tea.Cmd) {
	s := &m.settings
	switch s.section {
	case sectionProfile:
		name := strings.TrimSpace(s.profileFields[0].value)
		current := s.profileFields[1].value
		newPw := s.profileFields[2].value
		switch {
		case name == "":
			s.errText = "Informe o nome"
		case newPw != "" && current == "":
			s.errText = "Informe a senha atual para alterar a senha"
		case newPw != "" && !validPassword(newPw):
			s.errText = "A senha deve ter no mínimo 8 caracteres, com letras maiúsculas, minúsculas e números"
		default:
			s.errText = ""
			s.busy = true
			return m, updateProfileCmd(m.client, api.ProfileUpdate{
				Name:            name,
				CurrentPassword: current,
				NewPassword:     newPw,
			})
		}

	case sectionOrganization:
		name := strings.TrimSpace(s.orgFields[0].value)
		if name == "" {
			s.errText = "Informe o nome da organização"
			return m, nil
		}
		s.errText = ""
		s.busy = true
		return m, updateOrganizationCmd(m.client, name)

	case sectionAPI:
		s.busy = true
		return m, apiSettingsCmd(m.client, api.APISettings{
			FourcomAPIKey: strings.TrimSpace(s.apiFields[0].value),
			FourcomAPIURL: strings.TrimSpace(s.apiFields[1].value),
			OpenAIAPIKey:  strings.TrimSpace(s.apiFields[2].value),
		})
	}
	return m, nil
}

func (m Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &m.settings
	switch msg := msg.(type) {
	case ProfileLoadedMsg:
		s.loading = false
		if !msg.Res.OK {
			toast := m.notify("error", msg.Res.Err)
			return m, toast
		}
		s.profile = msg.User
		s.profileFields[0].value = msg.User.Name
		m.user = msg.User
		m.store.SetUser(msg.User)

	case OrganizationLoadedMsg:
		if !msg.Res.OK {
			toast := m.notify("error", msg.Res.Err)
			return m, toast
		}
		s.org = msg.Org
		s.orgFields[0].value = msg.Org.Name

	case ProfileSavedMsg:
		s.busy = false
		if !msg.Res.OK {
			s.errText = msg.Res.Err
			return m, nil
		}
		s.editing = false
		s.profile.Name = strings.TrimSpace(s.profileFields[0].value)
		s.profileFields[1].reset()
		s.profileFields[2].reset()
		m.user.Name = s.profile.Name
		m.store.SetUser(m.user)
		toast := m.notify("success", "Perfil atualizado com sucesso")
		return m, toast

	case OrganizationSavedMsg:
		s.busy = false
		if !msg.Res.OK {
			s.errText = msg.Res.Err
			return m, nil
		}
		s.editing = false
		s.org.Name = strings.TrimSpace(s.orgFields[0].value)
		toast := m.notify("success", "Organização atualizada com sucesso")
		return m, toast

	case APISettingsSavedMsg:
		s.busy = false
		if !msg.Res.OK {
			s.errText = msg.Res.Err
			return m, nil
		}
		s.editing = false
		toast := m.notify("success", "Configurações de API salvas")
		return m, toast

	case PreferencesSavedMsg:
		s.busy = false
		if !msg.Res.OK {
			s.errText = msg.Res.Err
			return m, nil
		}
		s.editing = false
		toast := m.notify("success", "Preferências salvas")
		return m, toast
	}
	return m, nil
}

const settingsLabelWidth = 22

func (m Model) viewSettings() string {
	s := m.settings
	var b strings.Builder

	for sec := settingsSection(0); sec < sectionCount; sec++ {
		label := " " + sec.title() + " "
		if sec == s.section {
			b.WriteString("  " + ui.PanelTitleActiveStyle.Render(label))
		} else {
			b.WriteString("  " + ui.PanelTitleStyle.Render(label))
		}
	}
	b.WriteString("\n\n")

	if s.loading {
		b.WriteString("  " + ui.DimStyle.Render("Carregando configurações...") + "\n")
		return b.String()
	}

	switch s.section {
	case sectionProfile:
		if s.editing {
			m.renderSettingsForm(&b, s.profileFields)
		} else {
			b.WriteString("  " + ui.DimStyle.Render("Nome:") + " " + s.profile.Name + "\n")
			b.WriteString("  " + ui.DimStyle.Render("Email:") + " " + s.profile.Email + "\n")
			b.WriteString("  " + ui.DimStyle.Render("Papel:") + " " + format.Role(s.profile.Role) + "\n")
		}

	case sectionOrganization:
		if s.editing {
			m.renderSettingsForm(&b, s.orgFields)
		} else {
			b.WriteString("  " + ui.DimStyle.Render("Nome:") + " " + s.org.Name + "\n")
			b.WriteString("  " + ui.DimStyle.Render("Plano:") + " " + format.Plan(s.org.Plan) + "\n")
			if !s.admin {
				b.WriteString("  " + ui.DimStyle.Render("Somente administradores podem editar") + "\n")
			}
		}

	case sectionAPI:
		if s.editing {
			m.renderSettingsForm(&b, s.apiFields)
		} else {
			b.WriteString("  " + ui.DimStyle.Render("Credenciais das integrações 4COM e OpenAI") + "\n")
			b.WriteString("  " + ui.DimStyle.Render("Pressione enter para editar") + "\n")
		}

	case sectionPreferences:
		b.WriteString(m.renderPreferences())
	}

	return b.String()
}

func (m Model) renderSettingsForm(b *strings.Builder, fields []field) {
	s := m.settings
	for i, f := range fields {
		b.WriteString("  " + renderField(f, s.focus == i, settingsLabelWidth) + "\n")
	}
	if s.errText != "" {
		b.WriteString("\n  " + ui.ErrorTextStyle.Render(s.errText) + "\n")
	}
	b.WriteString("\n  " + renderButton("Salvar", "Salvando...", s.busy, s.focus == len(fields)) + "\n")
}

func (m Model) renderPreferences() string {
	s := m.settings
	onOff := func(v bool) string {
		if v {
			return "ativado"
		}
		return "desativado"
	}
	rows := []struct {
		label string
		value string
	}{
		{"Idioma", s.prefs.Language},
		{"Tema", s.prefs.Theme},
		{"Notificações", onOff(s.prefs.Notifications)},
		{"Transcrição automática", onOff(s.prefs.AutoTranscribe)},
	}

	var b strings.Builder
	for i, row := range rows {
		label := row.label + ":"
		for len([]rune(label)) < settingsLabelWidth+1 {
			label += " "
		}
		line := label + " ◂ " + row.value + " ▸"
		if s.editing && s.focus == i {
			b.WriteString("  " + ui.FieldLabelActiveStyle.Render(line) + "\n")
		} else {
			b.WriteString("  " + ui.FieldLabelStyle.Render(line) + "\n")
		}
	}
	if s.editing {
		if s.errText != "" {
			b.WriteString("\n  " + ui.ErrorTextStyle.Render(s.errText) + "\n")
		}
		b.WriteString("\n  " + renderButton("Salvar", "Salvando...", s.busy, s.focus == 4) + "\n")
	}
	return b.String()
}
