package views

import (
	"fmt"
	"strings"

	"github.com/transcall/transcall/internal/api"
	"github.com/transcall/transcall/internal/format"
	"github.com/transcall/transcall/internal/ui"
)

var transcriptionWidths = []int{28, 12, 8, 12, 26, 12}

var transcriptionTitles = []string{"Título", "Data", "Duração", "Sentimento", "Palavras-chave", "Ações"}

// TranscriptionsTable renders the full transcriptions list.
func TranscriptionsTable(transcriptions []api.Transcription, selected int) string {
	var lines []string
	lines = append(lines, "  "+headerRow(transcriptionTitles, transcriptionWidths))

	if len(transcriptions) == 0 {
		lines = append(lines, "  "+placeholderRow("Nenhuma transcrição encontrada", transcriptionWidths))
		return strings.Join(lines, "\n")
	}

	for i, tr := range transcriptions {
		row := cursor(i == selected) +
			Cell(transcriptionTitle(tr), transcriptionWidths[0]) + "  " +
			Cell(format.Date(tr.CreatedAt), transcriptionWidths[1]) + "  " +
			Cell(format.Duration(tr.Duration), transcriptionWidths[2]) + "  " +
			PadRight(sentimentCell(tr.SentimentScore), transcriptionWidths[3]) + "  " +
			Cell(topKeywords(tr.Keywords), transcriptionWidths[4]) + "  " +
			ui.ButtonStyle.Render("ver detalhes")
		lines = append(lines, row)
	}

	return strings.Join(lines, "\n")
}

var recentWidths = []int{26, 16, 12, 8, 12, 14}

var recentTitles = []string{"Título", "Operador", "Data", "TMA", "Sentimento", "Ações"}

// RecentTranscriptionsTable renders the dashboard's recent-activity table.
func RecentTranscriptionsTable(transcriptions []api.Transcription, selected int) string {
	var lines []string
	lines = append(lines, "  "+headerRow(recentTitles, recentWidths))

	if len(transcriptions) == 0 {
		lines = append(lines, "  "+placeholderRow("Nenhuma transcrição encontrada", recentWidths))
		return strings.Join(lines, "\n")
	}

	for i, tr := range transcriptions {
		operator := tr.Operator
		if operator == "" {
			operator = "Não especificado"
		}

		row := cursor(i == selected) +
			Cell(transcriptionTitle(tr), recentWidths[0]) + "  " +
			Cell(operator, recentWidths[1]) + "  " +
			Cell(format.Date(tr.CreatedAt), recentWidths[2]) + "  " +
			Cell(format.Duration(tr.Duration), recentWidths[3]) + "  " +
			PadRight(sentimentCell(tr.SentimentScore), recentWidths[4]) + "  " +
			ui.ButtonStyle.Render("ver pdf csv")
		lines = append(lines, row)
	}

	return strings.Join(lines, "\n")
}

func transcriptionTitle(tr api.Transcription) string {
	if tr.Title != "" {
		return tr.Title
	}
	return fmt.Sprintf("Transcrição %d", tr.ID)
}

// sentimentCell renders the colored dot plus label for a score.
func sentimentCell(score float64) string {
	class := format.SentimentClass(score)
	return ui.Sentiment(class).Render("●") + " " + format.SentimentLabel(score)
}

// topKeywords shows up to three keywords, comma separated.
func topKeywords(keywords []api.Keyword) string {
	if len(keywords) == 0 {
		return "Nenhuma palavra-chave"
	}
	limit := len(keywords)
	if limit > 3 {
		limit = 3
	}
	var texts []string
	for _, kw := range keywords[:limit] {
		texts = append(texts, kw.Text)
	}
	return strings.Join(texts, ", ")
}
