package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/transcall/transcall/internal/api"
	"github.com/transcall/transcall/internal/ui"
	"github.com/transcall/transcall/internal/views"
)

type fourcomState struct {
	status       api.FourcomStatus
	statusOK     bool
	statusLoaded bool

	list     api.FourcomRecordingList
	selected int
	loading  bool

	// importStates tracks per-recording import progress keyed by 4COM id.
	importStates map[string]string

	filtering    bool
	filterFields []field // data inicial, data final
	filterFocus  int
	filterErr    string
}

func newFourcomState() fourcomState {
	return fourcomState{importStates: make(map[string]string)}
}

func (s *fourcomState) openFilters() {
	if s.filterFields == nil {
		s.filterFields = []field{
			{label: "Data inicial (AAAA-MM-DD)"},
			{label: "Data final (AAAA-MM-DD)"},
		}
	}
	s.filtering = true
	s.filterFocus = 0
	s.filterErr = ""
}

func (s fourcomState) filterValues() api.FourcomFilters {
	if s.filterFields == nil {
		return api.FourcomFilters{}
	}
	return api.FourcomFilters{
		StartDate: strings.TrimSpace(s.filterFields[0].value),
		EndDate:   strings.TrimSpace(s.filterFields[1].value),
	}
}

func (s fourcomState) current() (api.FourcomRecording, bool) {
	if s.selected < 0 || s.selected >= len(s.list.Recordings) {
		return api.FourcomRecording{}, false
	}
	return s.list.Recordings[s.selected], true
}

func (m Model) keyFourcom(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.fourcom

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
			return m, fourcomRecordingsCmd(m.client, f)
		}
		s.filterFields[s.filterFocus].handleKey(msg)
		return m, nil
	}

	switch msg.String() {
	case KeyUp:
		if s.selected > 0 {
			s.selected--
		}
	case KeyDown:
		if s.selected < len(s.list.Recordings)-1 {
			s.selected++
		}
	case KeyEnter, KeyInvite:
		if rec, ok := s.current(); ok {
			switch s.importStates[rec.ID] {
			case views.ImportRunning, views.ImportDone:
				return m, nil
			}
			s.importStates[rec.ID] = views.ImportRunning
			return m, fourcomImportCmd(m.client, rec.ID)
		}
	case KeyFilter:
		s.openFilters()
	case KeyRefresh:
		s.loading = true
		return m, tea.Batch(
			fourcomStatusCmd(m.client),
			fourcomRecordingsCmd(m.client, s.filterValues()),
		)
	}
	return m, nil
}

func (m Model) updateFourcom(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &m.fourcom
	switch msg := msg.(type) {
	case FourcomStatusMsg:
		s.statusLoaded = true
		s.statusOK = msg.Res.OK
		s.status = msg.Status

	case FourcomRecordingsMsg:
		s.loading = false
		if !msg.Res.OK {
			toast := m.notify("error", msg.Res.Err)
			return m, toast
		}
		s.list = msg.List
		if s.selected >= len(s.list.Recordings) {
			s.selected = 0
		}

	case FourcomImportedMsg:
		if !msg.Res.OK {
			s.importStates[msg.ID] = views.ImportFailed
			toast := m.notify("error", msg.Res.Err)
			return m, tea.Batch(toast, fourcomImportResetCmd(msg.ID))
		}
		s.importStates[msg.ID] = views.ImportDone
		message := msg.Resp.Message
		if message == "" {
			message = "Gravação importada com sucesso"
		}
		toast := m.notify("success", message)
		return m, toast

	case FourcomImportResetMsg:
		if s.importStates[msg.ID] == views.ImportFailed {
			delete(s.importStates, msg.ID)
		}
	}
	return m, nil
}

func (m Model) viewFourcom() string {
	s := m.fourcom
	var b strings.Builder
	b.WriteString("  " + ui.PanelTitleStyle.Render(" Gravações 4COM ") + "\n")

	if s.statusLoaded {
		b.WriteString("  " + views.FourcomStatusLine(s.status, s.statusOK) + "\n")
	}

	if s.filtering {
		b.WriteString("\n")
		for i, f := range s.filterFields {
			b.WriteString("  " + renderField(f, s.filterFocus == i, 26) + "\n")
		}
		if s.filterErr != "" {
			b.WriteString("  " + ui.ErrorTextStyle.Render(s.filterErr) + "\n")
		}
	}

	b.WriteString("\n")
	if s.loading && len(s.list.Recordings) == 0 {
		b.WriteString("  " + ui.DimStyle.Render("Carregando gravações...") + "\n")
		return b.String()
	}
	b.WriteString(views.FourcomTable(s.list, s.importStates, s.selected))
	return b.String()
}
