package views

import (
	"fmt"
	"strings"

	"github.com/transcall/transcall/internal/api"
	"github.com/transcall/transcall/internal/format"
	"github.com/transcall/transcall/internal/ui"
)

// Column widths for the recordings table.
var recordingWidths = []int{28, 16, 10, 12, 18}

var recordingTitles = []string{"Título", "Data", "Tipo", "Status", "Ações"}

// RecordingsTable renders the recordings list. The selected index highlights
// the row under the cursor; pass -1 for a non-interactive rendering.
func RecordingsTable(recordings []api.Recording, selected int) string {
	var lines []string
	lines = append(lines, "  "+headerRow(recordingTitles, recordingWidths))

	if len(recordings) == 0 {
		lines = append(lines, "  "+placeholderRow("Nenhuma gravação encontrada", recordingWidths))
		return strings.Join(lines, "\n")
	}

	for i, rec := range recordings {
		title := rec.Title
		if title == "" {
			title = fmt.Sprintf("Gravação %d", rec.ID)
		}

		date := format.Date(rec.CreatedAt)
		if t := format.Time(rec.CreatedAt); t != "" {
			date += " " + t
		}

		fileType := rec.FileType
		if fileType == "" {
			fileType = "Desconhecido"
		}

		badge := ui.Badge(format.StatusBadge(rec.Status)).Render(format.StatusLabel(rec.Status))

		row := cursor(i == selected) +
			Cell(title, recordingWidths[0]) + "  " +
			Cell(date, recordingWidths[1]) + "  " +
			Cell(fileType, recordingWidths[2]) + "  " +
			PadRight(badge, recordingWidths[3]) + "  " +
			recordingActions(rec)
		lines = append(lines, row)
	}

	return strings.Join(lines, "\n")
}

// recordingActions renders the per-row action hints. Viewing is only enabled
// once the transcription completed.
func recordingActions(rec api.Recording) string {
	var actions []string
	if rec.Status == "completed" {
		actions = append(actions, ui.ButtonStyle.Render("ver"))
	} else {
		actions = append(actions, ui.ButtonDisabledStyle.Render("---"))
	}
	actions = append(actions, ui.ButtonStyle.Render("baixar"))
	actions = append(actions, ui.ErrorTextStyle.Render("excluir"))
	return strings.Join(actions, " ")
}
