package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/transcall/transcall/internal/api"
	"github.com/transcall/transcall/internal/ui"
	"github.com/transcall/transcall/internal/views"
)

type transcriptionsState struct {
	list     []api.Transcription
	selected int
	loading  bool

	detailOpen    bool
	detailLoading bool
	detail        api.Transcription
	detailScroll  int
}

func (s transcriptionsState) current() (api.Transcription, bool) {
	if s.selected < 0 || s.selected >= len(s.list) {
		return api.Transcription{}, false
	}
	return s.list[s.selected], true
}

func (m Model) keyTranscriptions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.transcriptions

	if s.detailOpen {
		switch msg.String() {
		case KeyEsc:
			s.detailOpen = false
			s.detailScroll = 0
		case KeyUp, "k":
			if s.detailScroll > 0 {
				s.detailScroll--
			}
		case KeyDown, "j":
			if s.detailScroll < m.maxDetailScroll() {
				s.detailScroll++
			}
		case KeyPDF:
			return m, openBrowserCmd(m.client.ExportPDFURL(s.detail.ID))
		case KeyCancel:
			return m, openBrowserCmd(m.client.ExportCSVURL(s.detail.ID))
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
		if tr, ok := s.current(); ok {
			s.detailOpen = true
			s.detailLoading = true
			return m, transcriptionDetailCmd(m.client, tr.ID)
		}
	case KeyPDF:
		if tr, ok := s.current(); ok {
			return m, openBrowserCmd(m.client.ExportPDFURL(tr.ID))
		}
	case KeyCancel:
		if tr, ok := s.current(); ok {
			return m, openBrowserCmd(m.client.ExportCSVURL(tr.ID))
		}
	case KeyRefresh:
		s.loading = true
		return m, transcriptionsCmd(m.client)
	}
	return m, nil
}

func (m Model) updateTranscriptions(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &m.transcriptions
	switch msg := msg.(type) {
	case TranscriptionsLoadedMsg:
		s.loading = false
		if !msg.Res.OK {
			toast := m.notify("error", msg.Res.Err)
			return m, toast
		}
		s.list = msg.Transcriptions
		if s.selected >= len(s.list) {
			s.selected = 0
		}

	case TranscriptionDetailMsg:
		s.detailLoading = false
		if !msg.Res.OK {
			s.detailOpen = false
			toast := m.notify("error", msg.Res.Err)
			return m, toast
		}
		s.detail = msg.Transcription
		s.detailScroll = 0
	}
	return m, nil
}

// detailVisibleLines is how many detail lines fit under the page chrome.
func (m Model) detailVisibleLines() int {
	lines := m.height - 8
	if lines < 5 {
		lines = 5
	}
	return lines
}

func (m Model) maxDetailScroll() int {
	total := len(strings.Split(views.TranscriptionDetail(m.transcriptions.detail, m.contentWidth()), "\n"))
	max := total - m.detailVisibleLines()
	if max < 0 {
		max = 0
	}
	return max
}

func (m Model) viewTranscriptions() string {
	s := m.transcriptions
	var b strings.Builder

	if s.detailOpen {
		b.WriteString("  " + ui.PanelTitleActiveStyle.Render(" Detalhes da Transcrição ") + "\n")
		if s.detailLoading {
			b.WriteString("  " + ui.DimStyle.Render("Carregando transcrição...") + "\n")
			return b.String()
		}
		lines := strings.Split(views.TranscriptionDetail(s.detail, m.contentWidth()), "\n")
		start := s.detailScroll
		if start > len(lines) {
			start = len(lines)
		}
		end := start + m.detailVisibleLines()
		if end > len(lines) {
			end = len(lines)
		}
		b.WriteString(strings.Join(lines[start:end], "\n"))
		return b.String()
	}

	b.WriteString("  " + ui.PanelTitleStyle.Render(" Transcrições ") + "\n")
	if s.loading && len(s.list) == 0 {
		b.WriteString("  " + ui.DimStyle.Render("Carregando transcrições...") + "\n")
		return b.String()
	}
	b.WriteString(views.TranscriptionsTable(s.list, s.selected))
	return b.String()
}
