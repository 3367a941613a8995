package app

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/transcall/transcall/internal/api"
	"github.com/transcall/transcall/internal/ui"
)

type uploadPhase int

const (
	uploadPick uploadPhase = iota
	uploadSending
	uploadDone
)

type uploadState struct {
	phase   uploadPhase
	path    field
	focus   int // 0 path, 1 enviar
	errText string

	fileName string
	progress int
	upload   *api.Upload

	resp         api.UploadResponse
	transcribing bool
}

func newUploadState() uploadState {
	return uploadState{path: field{label: "Caminho do arquivo"}}
}

func (s uploadState) typing() bool {
	return s.phase == uploadPick && s.focus == 0
}

func (m Model) keyUpload(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.upload

	switch s.phase {
	case uploadPick:
		switch msg.String() {
		case KeyTab, KeyDown:
			s.focus = (s.focus + 1) % 2
			return m, nil
		case KeyShiftTab, KeyUp:
			s.focus = (s.focus + 1) % 2
			return m, nil
		case KeyEnter:
			path := strings.TrimSpace(s.path.value)
			if path == "" {
				s.errText = "Informe o caminho do arquivo"
				return m, nil
			}
			if !api.AllowedFileType(path) {
				s.errText = "Tipo de arquivo não suportado. Formatos aceitos: " + api.AllowedFileTypesLabel()
				return m, nil
			}
			s.errText = ""
			return m, startUploadCmd(m.client, path, filepath.Base(path))
		}
		if s.focus == 0 {
			s.path.handleKey(msg)
		}

	case uploadSending:
		switch msg.String() {
		case KeyCancel, KeyEsc:
			if s.upload != nil {
				s.upload.Cancel()
			}
		}

	case uploadDone:
		switch msg.String() {
		case KeyTranscribe, KeyEnter:
			if !s.transcribing {
				s.transcribing = true
				return m, transcribeCmd(m.client, s.resp.ID)
			}
		case KeyNew:
			m.upload = newUploadState()
		}
	}
	return m, nil
}

func (m Model) updateUpload(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &m.upload
	switch msg := msg.(type) {
	case UploadStartedMsg:
		s.phase = uploadSending
		s.progress = 0
		s.upload = msg.Upload
		s.fileName = msg.Name
		return m, uploadEventCmd(msg.Upload)

	case UploadInvalidMsg:
		s.errText = msg.Err

	case UploadEventMsg:
		if !msg.OK || s.upload == nil {
			return m, nil
		}
		ev := msg.Event
		if !ev.Done {
			s.progress = ev.Progress
			return m, uploadEventCmd(s.upload)
		}
		s.upload = nil
		if ev.Canceled {
			s.phase = uploadPick
			toast := m.notify("info", "Upload cancelado")
			return m, toast
		}
		if !ev.Result.OK {
			s.phase = uploadPick
			s.errText = ev.Result.Err
			return m, nil
		}
		s.phase = uploadDone
		s.resp = ev.Response
		m.store.SetLastRecordingID(ev.Response.ID)
		toast := m.notify("success", "Upload concluído com sucesso")
		return m, toast
	}
	return m, nil
}

func (m Model) viewUpload() string {
	s := m.upload
	var b strings.Builder
	b.WriteString("  " + ui.PanelTitleStyle.Render(" Upload de Gravação ") + "\n\n")

	switch s.phase {
	case uploadPick:
		b.WriteString("  " + renderField(s.path, s.focus == 0, 20) + "\n")
		b.WriteString("  " + ui.DimStyle.Render("Formatos aceitos: "+api.AllowedFileTypesLabel()) + "\n")
		if s.errText != "" {
			b.WriteString("\n  " + ui.ErrorTextStyle.Render(s.errText) + "\n")
		}
		b.WriteString("\n  " + renderButton("Enviar", "", false, s.focus == 1) + "\n")

	case uploadSending:
		b.WriteString("  " + s.fileName + "\n\n")
		b.WriteString("  " + renderProgress(s.progress, m.contentWidth()-12) + "\n")
		b.WriteString("\n  " + ui.DimStyle.Render("Enviando... pressione c para cancelar") + "\n")

	case uploadDone:
		title := s.resp.Title
		if title == "" {
			title = s.fileName
		}
		b.WriteString("  " + ui.BadgeSuccessStyle.Render(" Concluído ") + " " + title + "\n\n")
		b.WriteString("  " + renderButton("Transcrever Agora", "Processando...", s.transcribing, true))
		b.WriteString("  " + renderButton("Novo upload", "", false, false) + "\n")
	}
	return b.String()
}

func renderProgress(pct, width int) string {
	if width < 10 {
		width = 10
	}
	filled := pct * width / 100
	if filled > width {
		filled = width
	}
	bar := ui.ProgressFillStyle.Render(strings.Repeat("█", filled)) +
		ui.ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %3d%%", bar, pct)
}
