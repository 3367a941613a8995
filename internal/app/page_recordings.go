package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/transcall/transcall/internal/api"
	"github.com/transcall/transcall/internal/ui"
	"github.com/transcall/transcall/internal/views"
)

type recordingsState struct {
	list     []api.Recording
	selected int
	loading  bool

	confirmDelete bool
	downloading   bool
}

func (s recordingsState) current() (api.Recording, bool) {
	if s.selected < 0 || s.selected >= len(s.list) {
		return api.Recording{}, false
	}
	return s.list[s.selected], true
}

func (m Model) keyRecordings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.recordings

	if s.confirmDelete {
		switch msg.String() {
		case "s", "S":
			s.confirmDelete = false
			if rec, ok := s.current(); ok {
				s.loading = true
				return m, deleteRecordingCmd(m.client, rec.ID)
			}
		default:
			s.confirmDelete = false
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
	case KeyEnter:
		if rec, ok := s.current(); ok && rec.Status == "completed" && rec.TranscriptionID != 0 {
			return m.openTranscription(rec.TranscriptionID)
		}
	case KeyTranscribe:
		if rec, ok := s.current(); ok {
			m.store.SetLastRecordingID(rec.ID)
			return m, transcribeCmd(m.client, rec.ID)
		}
	case KeyDownload:
		if rec, ok := s.current(); ok && !s.downloading {
			s.downloading = true
			return m, downloadRecordingCmd(m.client, rec.ID, m.cfg.DownloadDir)
		}
	case KeyDelete:
		if _, ok := s.current(); ok {
			s.confirmDelete = true
		}
	case KeyRefresh:
		s.loading = true
		return m, recordingsCmd(m.client)
	}
	return m, nil
}

func (m Model) updateRecordings(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &m.recordings
	switch msg := msg.(type) {
	case RecordingsLoadedMsg:
		s.loading = false
		if !msg.Res.OK {
			toast := m.notify("error", msg.Res.Err)
			return m, toast
		}
		s.list = msg.Recordings
		if s.selected >= len(s.list) {
			s.selected = 0
		}

	case RecordingDeletedMsg:
		s.loading = false
		if !msg.Res.OK {
			toast := m.notify("error", msg.Res.Err)
			return m, toast
		}
		toast := m.notify("success", "Gravação excluída com sucesso")
		s.loading = true
		return m, tea.Batch(toast, recordingsCmd(m.client))

	case RecordingDownloadedMsg:
		s.downloading = false
		if !msg.Res.OK {
			toast := m.notify("error", msg.Res.Err)
			return m, toast
		}
		toast := m.notify("success", "Gravação salva em "+msg.Path)
		return m, toast

	case TranscribeResultMsg:
		m.upload.transcribing = false
		if !msg.Res.OK {
			toast := m.notify("error", msg.Res.Err)
			return m, toast
		}
		m.store.ClearLastRecordingID()
		toast := m.notify("success", "Transcrição iniciada. Acompanhe o status na lista.")
		if m.page == PageUpload {
			m2, cmd := m.navigate(PageTranscriptions)
			return m2, tea.Batch(toast, cmd)
		}
		s.loading = true
		return m, tea.Batch(toast, recordingsCmd(m.client))
	}
	return m, nil
}

func (m Model) viewRecordings() string {
	s := m.recordings
	var b strings.Builder
	b.WriteString("  " + ui.PanelTitleStyle.Render(" Gravações ") + "\n")

	if s.loading && len(s.list) == 0 {
		b.WriteString("  " + ui.DimStyle.Render("Carregando gravações...") + "\n")
		return b.String()
	}

	b.WriteString(views.RecordingsTable(s.list, s.selected))

	if s.confirmDelete {
		if rec, ok := s.current(); ok {
			title := rec.Title
			if title == "" {
				title = "esta gravação"
			}
			b.WriteString("\n  " + ui.ErrorStyle.Render(" Excluir "+title+"? (s/n) ") + "\n")
		}
	}
	if s.downloading {
		b.WriteString("\n  " + ui.DimStyle.Render(ui.SpinnerStyle.Render("⟳ ")+"Baixando...") + "\n")
	}
	return b.String()
}
