// Package app implements the terminal application: a root model that owns the
// session, dispatches messages to page controllers, and renders the chrome
// around the active page.
package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/transcall/transcall/internal/api"
	"github.com/transcall/transcall/internal/config"
	"github.com/transcall/transcall/internal/format"
	"github.com/transcall/transcall/internal/session"
	"github.com/transcall/transcall/internal/ui"
)

// Page identifies the active page.
type Page int

const (
	PageLogin Page = iota
	PageRegister
	PageDashboard
	PageRecordings
	PageUpload
	PageTranscriptions
	PageFourcom
	PageUsers
	PageSettings
)

// navPages lists the authenticated pages in nav-bar order. The digit keys
// 1..7 map onto this slice.
var navPages = []Page{
	PageDashboard,
	PageRecordings,
	PageUpload,
	PageTranscriptions,
	PageFourcom,
	PageUsers,
	PageSettings,
}

func (p Page) title() string {
	switch p {
	case PageLogin:
		return "Entrar"
	case PageRegister:
		return "Criar conta"
	case PageDashboard:
		return "Dashboard"
	case PageRecordings:
		return "Gravações"
	case PageUpload:
		return "Upload"
	case PageTranscriptions:
		return "Transcrições"
	case PageFourcom:
		return "4COM"
	case PageUsers:
		return "Usuários"
	case PageSettings:
		return "Configurações"
	}
	return ""
}

// Model is the root application model.
type Model struct {
	client *api.Client
	store  *session.Store
	cfg    config.Config

	width  int
	height int

	page Page
	user api.User

	notifications []Notification

	login          loginState
	register       registerState
	dashboard      dashboardState
	recordings     recordingsState
	upload         uploadState
	transcriptions transcriptionsState
	fourcom        fourcomState
	users          usersState
	settings       settingsState
}

// New creates the root model. A stored session skips the login page; the
// token is only trusted until the first request comes back 401.
func New(client *api.Client, store *session.Store, cfg config.Config) Model {
	m := Model{
		client:  client,
		store:   store,
		cfg:     cfg,
		width:   100,
		height:  32,
		page:    PageLogin,
		login:   newLoginState(),
		upload:  newUploadState(),
		fourcom: newFourcomState(),
	}
	if store.IsAuthenticated() {
		m.user = store.User()
		m.page = PageDashboard
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.page == PageDashboard {
		return tea.Batch(
			dashboardStatsCmd(m.client, m.dashboard.filterValues()),
			recentTranscriptionsCmd(m.client),
		)
	}
	return nil
}

// navigate switches to a page and kicks off its data loads.
func (m Model) navigate(page Page) (Model, tea.Cmd) {
	m.page = page
	switch page {
	case PageLogin:
		m.login = newLoginState()
	case PageRegister:
		m.register = newRegisterState()
	case PageDashboard:
		m.dashboard.loading = true
		return m, tea.Batch(
			dashboardStatsCmd(m.client, m.dashboard.filterValues()),
			recentTranscriptionsCmd(m.client),
		)
	case PageRecordings:
		m.recordings.loading = true
		m.recordings.confirmDelete = false
		return m, recordingsCmd(m.client)
	case PageUpload:
		if m.upload.phase != uploadSending {
			m.upload = newUploadState()
		}
	case PageTranscriptions:
		m.transcriptions.loading = true
		m.transcriptions.detailOpen = false
		return m, transcriptionsCmd(m.client)
	case PageFourcom:
		m.fourcom.loading = true
		return m, tea.Batch(
			fourcomStatusCmd(m.client),
			fourcomRecordingsCmd(m.client, m.fourcom.filterValues()),
		)
	case PageUsers:
		m.users.loading = true
		m.users.inviting = false
		return m, usersCmd(m.client)
	case PageSettings:
		m.settings = newSettingsState(m.user, m.isAdmin())
		m.settings.loading = true
		return m, tea.Batch(profileCmd(m.client), organizationCmd(m.client))
	}
	return m, nil
}

func (m Model) isAdmin() bool {
	return m.user.Role == "admin"
}

// logout clears the stored session and returns to the login page.
func (m Model) logout() (Model, tea.Cmd) {
	m.store.Clear()
	m.user = api.User{}
	m2, cmd := m.navigate(PageLogin)
	toast := m2.notify("info", "Você saiu da sua conta")
	return m2, tea.Batch(cmd, toast)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SessionExpiredMsg:
		m.user = api.User{}
		m2, cmd := m.navigate(PageLogin)
		toast := m2.notify("warning", "Sessão expirada")
		return m2, tea.Batch(cmd, toast)

	case DismissToastMsg:
		m.dismissToast(msg.ID)
		return m, nil

	case BrowserOpenedMsg:
		if msg.Err != nil {
			toast := m.notify("error", "Não foi possível abrir o navegador")
			return m, toast
		}
		return m, nil

	case LoginResultMsg, RegisterResultMsg:
		return m.updateAuth(msg)

	case DashboardStatsMsg, RecentTranscriptionsMsg:
		return m.updateDashboard(msg)

	case RecordingsLoadedMsg, RecordingDeletedMsg, RecordingDownloadedMsg, TranscribeResultMsg:
		return m.updateRecordings(msg)

	case UploadStartedMsg, UploadInvalidMsg, UploadEventMsg:
		return m.updateUpload(msg)

	case TranscriptionsLoadedMsg, TranscriptionDetailMsg:
		return m.updateTranscriptions(msg)

	case FourcomStatusMsg, FourcomRecordingsMsg, FourcomImportedMsg, FourcomImportResetMsg:
		return m.updateFourcom(msg)

	case UsersLoadedMsg, InviteResultMsg:
		return m.updateUsers(msg)

	case ProfileLoadedMsg, ProfileSavedMsg, APISettingsSavedMsg, PreferencesSavedMsg,
		OrganizationLoadedMsg, OrganizationSavedMsg:
		return m.updateSettings(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == KeyCtrlC {
		return m, tea.Quit
	}

	if !m.typing() {
		switch msg.String() {
		case KeyLogout:
			if m.authenticated() {
				return m.logout()
			}
		case KeyDismissToast:
			m.dismissOldestToast()
			return m, nil
		case "1", "2", "3", "4", "5", "6", "7":
			if m.authenticated() {
				idx := int(msg.String()[0] - '1')
				return m.navigate(navPages[idx])
			}
		}
	}

	switch m.page {
	case PageLogin:
		return m.keyLogin(msg)
	case PageRegister:
		return m.keyRegister(msg)
	case PageDashboard:
		return m.keyDashboard(msg)
	case PageRecordings:
		return m.keyRecordings(msg)
	case PageUpload:
		return m.keyUpload(msg)
	case PageTranscriptions:
		return m.keyTranscriptions(msg)
	case PageFourcom:
		return m.keyFourcom(msg)
	case PageUsers:
		return m.keyUsers(msg)
	case PageSettings:
		return m.keySettings(msg)
	}
	return m, nil
}

func (m Model) authenticated() bool {
	return m.page != PageLogin && m.page != PageRegister
}

// typing reports whether the active page currently routes runes into a text
// field. Global single-letter shortcuts are suspended while typing.
func (m Model) typing() bool {
	switch m.page {
	case PageLogin:
		return m.login.typing()
	case PageRegister:
		return m.register.typing()
	case PageDashboard:
		return m.dashboard.filtering
	case PageUpload:
		return m.upload.typing()
	case PageFourcom:
		return m.fourcom.filtering
	case PageUsers:
		return m.users.typing()
	case PageSettings:
		return m.settings.typing()
	}
	return false
}

func (m Model) View() string {
	var b strings.Builder

	if m.page == PageLogin || m.page == PageRegister {
		b.WriteString(m.renderAuthHeader())
		b.WriteString("\n\n")
		if toasts := m.renderNotifications(); toasts != "" {
			b.WriteString(toasts)
			b.WriteString("\n\n")
		}
		if m.page == PageLogin {
			b.WriteString(m.viewLogin())
		} else {
			b.WriteString(m.viewRegister())
		}
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
		return b.String()
	}

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderNav())
	b.WriteString("\n")
	b.WriteString(ui.DividerStyle.Render(strings.Repeat("─", m.contentWidth())))
	b.WriteString("\n")
	if toasts := m.renderNotifications(); toasts != "" {
		b.WriteString(toasts)
		b.WriteString("\n")
	}
	b.WriteString(m.pageView())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) pageView() string {
	switch m.page {
	case PageDashboard:
		return m.viewDashboard()
	case PageRecordings:
		return m.viewRecordings()
	case PageUpload:
		return m.viewUpload()
	case PageTranscriptions:
		return m.viewTranscriptions()
	case PageFourcom:
		return m.viewFourcom()
	case PageUsers:
		return m.viewUsers()
	case PageSettings:
		return m.viewSettings()
	}
	return ""
}

func (m Model) contentWidth() int {
	w := m.width
	if w < 40 {
		w = 40
	}
	if w > 120 {
		w = 120
	}
	return w
}

func (m Model) renderAuthHeader() string {
	return ui.TitleStyle.Render("  TransCall  ") + "  " +
		ui.DimStyle.Render("Transcrição e análise de chamadas")
}

func (m Model) renderHeader() string {
	left := ui.TitleStyle.Render("  TransCall  ")
	right := fmt.Sprintf("%s (%s)", m.user.Name, format.Role(m.user.Role))
	gap := m.contentWidth() - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + ui.DimStyle.Render(right)
}

func (m Model) renderNav() string {
	var parts []string
	for i, p := range navPages {
		label := fmt.Sprintf(" %d %s ", i+1, p.title())
		if p == m.page {
			parts = append(parts, ui.PanelTitleActiveStyle.Render(label))
		} else {
			parts = append(parts, ui.PanelTitleStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

type keyHint struct {
	key  string
	desc string
}

func (m Model) renderFooter() string {
	hints := m.pageHints()
	if m.authenticated() {
		hints = append(hints, keyHint{"1-7", "páginas"}, keyHint{KeyLogout, "sair da conta"})
	}
	hints = append(hints, keyHint{KeyCtrlC, "fechar"})

	var parts []string
	for _, h := range hints {
		parts = append(parts, ui.FooterKeyStyle.Render(h.key)+" "+ui.FooterDescStyle.Render(h.desc))
	}
	return " " + strings.Join(parts, "  ")
}

func (m Model) pageHints() []keyHint {
	switch m.page {
	case PageLogin:
		return []keyHint{{"tab", "campo seguinte"}, {"enter", "entrar"}}
	case PageRegister:
		return []keyHint{{"tab", "campo seguinte"}, {"enter", "cadastrar"}, {"esc", "voltar"}}
	case PageDashboard:
		if m.dashboard.filtering {
			return []keyHint{{"tab", "campo seguinte"}, {"enter", "aplicar"}, {"esc", "cancelar"}}
		}
		return []keyHint{{"f", "filtros"}, {"e", "exportar CSV"}, {"r", "atualizar"}}
	case PageRecordings:
		if m.recordings.confirmDelete {
			return []keyHint{{"s", "confirmar exclusão"}, {"n", "cancelar"}}
		}
		return []keyHint{
			{"↑/↓", "navegar"}, {"enter", "ver"}, {"t", "transcrever"},
			{"b", "baixar"}, {"d", "excluir"}, {"r", "atualizar"},
		}
	case PageUpload:
		switch m.upload.phase {
		case uploadSending:
			return []keyHint{{"c", "cancelar"}}
		case uploadDone:
			return []keyHint{{"t", "transcrever agora"}, {"n", "novo upload"}}
		}
		return []keyHint{{"enter", "enviar"}}
	case PageTranscriptions:
		if m.transcriptions.detailOpen {
			return []keyHint{{"↑/↓", "rolar"}, {"p", "exportar PDF"}, {"c", "exportar CSV"}, {"esc", "fechar"}}
		}
		return []keyHint{
			{"↑/↓", "navegar"}, {"enter", "ver"}, {"p", "PDF"}, {"c", "CSV"}, {"r", "atualizar"},
		}
	case PageFourcom:
		if m.fourcom.filtering {
			return []keyHint{{"tab", "campo seguinte"}, {"enter", "aplicar"}, {"esc", "cancelar"}}
		}
		return []keyHint{{"↑/↓", "navegar"}, {"enter", "importar"}, {"f", "filtros"}, {"r", "atualizar"}}
	case PageUsers:
		if m.users.inviting {
			return []keyHint{{"tab", "campo seguinte"}, {"←/→", "papel"}, {"enter", "convidar"}, {"esc", "cancelar"}}
		}
		return []keyHint{{"↑/↓", "navegar"}, {"i", "convidar"}, {"r", "atualizar"}}
	case PageSettings:
		if m.settings.editing {
			return []keyHint{{"tab", "campo seguinte"}, {"enter", "salvar"}, {"esc", "cancelar"}}
		}
		return []keyHint{{"↑/↓", "seção"}, {"enter", "editar"}}
	}
	return nil
}
