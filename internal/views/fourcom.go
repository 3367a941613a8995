package views

import (
	"strings"

	"github.com/transcall/transcall/internal/api"
	"github.com/transcall/transcall/internal/format"
	"github.com/transcall/transcall/internal/ui"
)

// Per-item import states for the 4COM recordings list.
const (
	ImportIdle    = ""
	ImportRunning = "importing"
	ImportDone    = "imported"
	ImportFailed  = "error"
)

// FourcomStatusLine renders the integration's connection indicator.
func FourcomStatusLine(status api.FourcomStatus, ok bool) string {
	if !ok {
		return ui.StatusDisconnectedStyle.Render("●") + " Erro de conexão"
	}
	if status.Status == "connected" {
		return ui.StatusConnectedStyle.Render("●") + " Conectado"
	}
	if status.SimulationMode {
		return ui.StatusDisconnectedStyle.Render("●") + " Modo de simulação"
	}
	return ui.StatusDisconnectedStyle.Render("●") + " Desconectado"
}

var fourcomWidths = []int{28, 12, 8, 18, 14}

var fourcomTitles = []string{"Título", "Data", "Duração", "Agente", "Ações"}

// FourcomTable renders the list of importable 4COM recordings. importStates
// carries the per-item button state, keyed by the 4COM recording id.
func FourcomTable(list api.FourcomRecordingList, importStates map[string]string, selected int) string {
	var lines []string

	if list.Simulation {
		lines = append(lines, "  "+ui.PlaceholderStyle.Render(
			"Modo de simulação ativado. Os dados exibidos são fictícios."))
	}

	lines = append(lines, "  "+headerRow(fourcomTitles, fourcomWidths))

	if len(list.Recordings) == 0 {
		lines = append(lines, "  "+placeholderRow("Nenhuma gravação encontrada", fourcomWidths))
		return strings.Join(lines, "\n")
	}

	for i, rec := range list.Recordings {
		row := cursor(i == selected) +
			Cell(rec.Title, fourcomWidths[0]) + "  " +
			Cell(format.Date(rec.Date), fourcomWidths[1]) + "  " +
			Cell(format.Duration(rec.Duration), fourcomWidths[2]) + "  " +
			Cell(rec.AgentName, fourcomWidths[3]) + "  " +
			importAction(importStates[rec.ID])
		lines = append(lines, row)
	}

	return strings.Join(lines, "\n")
}

func importAction(state string) string {
	switch state {
	case ImportRunning:
		return ui.ButtonDisabledStyle.Render("Importando...")
	case ImportDone:
		return ui.BadgeSuccessStyle.Render("Importado")
	case ImportFailed:
		return ui.BadgeDangerStyle.Render("Erro")
	default:
		return ui.ButtonStyle.Render("Importar")
	}
}
