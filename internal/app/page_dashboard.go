package app

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/transcall/transcall/internal/api"
	"github.com/transcall/transcall/internal/ui"
	"github.com/transcall/transcall/internal/views"
)

type dashboardState struct {
	stats   api.DashboardStats
	recent  []api.Transcription
	loading bool
	loaded  bool

	selected int

	filtering    bool
	filterFields []field // data inicial, data final, operador
	filterFocus  int
	filterErr    string
}

func (s *dashboardState) openFilters() {
	if s.filterFields == nil {
		s.filterFields = []field{
			{label: "Data inicial (AAAA-MM-DD)"},
			{label: "Data final (AAAA-MM-DD)"},
			{label: "Operador"},
		}
	}
	s.filtering = true
	s.filterFocus = 0
	s.filterErr = ""
}

func (s dashboardState) filterValues() api.DashboardFilters {
	if s.filterFields == nil {
		return api.DashboardFilters{}
	}
	return api.DashboardFilters{
		StartDate: strings.TrimSpace(s.filterFields[0].value),
		EndDate:   strings.TrimSpace(s.filterFields[1].value),
		Operator:  strings.TrimSpace(s.filterFields[2].value),
	}
}

// validDateRange checks the AAAA-MM-DD inputs. Empty values pass; a start
// after the end does not.
func validDateRange(start, end string) (string, bool) {
	var from, to time.Time
	var err error
	if start != "" {
		if from, err = time.Parse("2006-01-02", start); err != nil {
			return "Data inicial inválida", false
		}
	}
	if end != "" {
		if to, err = time.Parse("2006-01-02", end); err != nil {
			return "Data final inválida", false
		}
	}
	if start != "" && end != "" && from.After(to) {
		return "Data inicial não pode ser posterior à data final", false
	}
	return "", true
}

func (m Model) keyDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.dashboard

	if s.filtering {
		switch msg.String() {
		case KeyEsc:
			s.filtering = false
			return m, nil
		case KeyTab, KeyDown:
			s.filterFocus = (s.filterFocus + 1) % len(s.filterFields)
			return m, nil
		case KeyShiftTab, KeyUp:
			s.filterFocus = (s.filterFocus + len(s.filterFields) - 1) % len(s.filterFields)
			return m, nil
		case KeyEnter:
			f := s.filterValues()
			if errText, ok := validDateRange(f.StartDate, f.EndDate); !ok {
				s.filterErr = errText
				return m, nil
			}
			s.filterErr = ""
			s.filtering = false
			s.loading = true
			return m, dashboardStatsCmd(m.client, f)
		}
		s.filterFields[s.filterFocus].handleKey(msg)
		return m, nil
	}

	switch msg.String() {
	case KeyFilter:
		s.openFilters()
	case KeyExport:
		return m, openBrowserCmd(m.client.ExportDashboardCSVURL(s.filterValues()))
	case KeyRefresh:
		s.loading = true
		return m, tea.Batch(
			dashboardStatsCmd(m.client, s.filterValues()),
			recentTranscriptionsCmd(m.client),
		)
	case KeyUp:
		if s.selected > 0 {
			s.selected--
		}
	case KeyDown:
		if s.selected < len(s.recent)-1 {
			s.selected++
		}
	case KeyEnter:
		if s.selected < len(s.recent) {
			return m.openTranscription(s.recent[s.selected].ID)
		}
	case KeyPDF:
		if s.selected < len(s.recent) {
			return m, openBrowserCmd(m.client.ExportPDFURL(s.recent[s.selected].ID))
		}
	case KeyCancel:
		if s.selected < len(s.recent) {
			return m, openBrowserCmd(m.client.ExportCSVURL(s.recent[s.selected].ID))
		}
	}
	return m, nil
}

// openTranscription jumps to the transcriptions page with one detail open.
func (m Model) openTranscription(id int) (tea.Model, tea.Cmd) {
	m2, cmd := m.navigate(PageTranscriptions)
	m2.transcriptions.detailOpen = true
	m2.transcriptions.detailLoading = true
	return m2, tea.Batch(cmd, transcriptionDetailCmd(m2.client, id))
}

func (m Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &m.dashboard
	switch msg := msg.(type) {
	case DashboardStatsMsg:
		s.loading = false
		if !msg.Res.OK {
			toast := m.notify("error", msg.Res.Err)
			return m, toast
		}
		s.stats = msg.Stats
		s.loaded = true

	case RecentTranscriptionsMsg:
		if !msg.Res.OK {
			toast := m.notify("error", msg.Res.Err)
			return m, toast
		}
		s.recent = msg.Transcriptions
		if s.selected >= len(s.recent) {
			s.selected = 0
		}
	}
	return m, nil
}

func (m Model) viewDashboard() string {
	s := m.dashboard
	var b strings.Builder

	if s.filtering {
		b.WriteString("  " + ui.PanelTitleActiveStyle.Render(" Filtros ") + "\n\n")
		for i, f := range s.filterFields {
			b.WriteString("  " + renderField(f, s.filterFocus == i, 26) + "\n")
		}
		if s.filterErr != "" {
			b.WriteString("\n  " + ui.ErrorTextStyle.Render(s.filterErr) + "\n")
		}
		b.WriteString("\n")
	}

	if s.loading && !s.loaded {
		b.WriteString("  " + ui.DimStyle.Render("Carregando dados...") + "\n")
		return b.String()
	}

	b.WriteString(views.Dashboard(s.stats, m.contentWidth()))
	b.WriteString("\n")
	b.WriteString("  " + ui.PanelTitleStyle.Render(" Atividade recente ") + "\n")
	b.WriteString(views.RecentTranscriptionsTable(s.recent, s.selected))
	return b.String()
}
