package views

import (
	"fmt"
	"strings"

	"github.com/transcall/transcall/internal/api"
	"github.com/transcall/transcall/internal/format"
	"github.com/transcall/transcall/internal/ui"
)

// TranscriptionDetail renders the full detail panel for one transcription:
// header, summary, sentiment gauge, keyword cloud and the speaker segments.
func TranscriptionDetail(tr api.Transcription, width int) string {
	if width < 40 {
		width = 40
	}

	var sections []string

	title := tr.Title
	if title == "" {
		title = "Transcrição"
	}
	operator := tr.Operator
	if operator == "" {
		operator = "Não especificado"
	}

	sections = append(sections, ui.TitleStyle.Render(title))
	sections = append(sections, ui.DimStyle.Render(fmt.Sprintf("%s  %s  %s",
		format.Date(tr.CreatedAt), format.Duration(tr.Duration), operator)))
	sections = append(sections, "")

	summary := tr.Summary
	if summary == "" {
		summary = "Resumo não disponível"
	}
	sections = append(sections, ui.PanelTitleStyle.Render("Resumo"))
	for _, line := range WrapText(summary, width-2) {
		sections = append(sections, "  "+line)
	}
	sections = append(sections, "")

	sections = append(sections, ui.PanelTitleStyle.Render("Sentimento"))
	sections = append(sections, "  "+sentimentGauge(tr.SentimentScore, width-4))
	sections = append(sections, "")

	sections = append(sections, ui.PanelTitleStyle.Render("Palavras-chave"))
	sections = append(sections, "  "+keywordCloud(tr.Keywords, width-2))
	sections = append(sections, "")

	sections = append(sections, ui.PanelTitleStyle.Render(fmt.Sprintf("Segmentos (%d)", len(tr.Segments))))
	sections = append(sections, renderSegments(tr.Segments, width))

	return strings.Join(sections, "\n")
}

// sentimentGauge draws the -1..1 score as a marker on a horizontal scale.
func sentimentGauge(score float64, width int) string {
	if width < 10 {
		width = 10
	}
	if score < -1 {
		score = -1
	}
	if score > 1 {
		score = 1
	}

	pos := int((score + 1) / 2 * float64(width-1))
	var bar strings.Builder
	for i := 0; i < width; i++ {
		if i == pos {
			bar.WriteString(ui.Sentiment(format.SentimentClass(score)).Render("◆"))
		} else {
			bar.WriteString(ui.DimStyle.Render("─"))
		}
	}
	label := ui.Sentiment(format.SentimentClass(score)).Render(
		fmt.Sprintf("%.2f %s", score, format.SentimentLabel(score)))
	return bar.String() + "  " + label
}

// keywordCloud lists keywords with their counts, most frequent first.
func keywordCloud(keywords []api.Keyword, width int) string {
	if len(keywords) == 0 {
		return ui.PlaceholderStyle.Render("Nenhuma palavra-chave encontrada")
	}
	var parts []string
	for _, kw := range keywords {
		parts = append(parts, fmt.Sprintf("%s (%d)", kw.Text, kw.Count))
	}
	return Truncate(strings.Join(parts, "  "), width)
}

func renderSegments(segments []api.Segment, width int) string {
	if len(segments) == 0 {
		return "  " + ui.PlaceholderStyle.Render("Nenhum segmento de transcrição disponível")
	}

	var lines []string
	for _, seg := range segments {
		header := ui.SelectedStyle.Render(seg.Speaker) + "  " +
			ui.DimStyle.Render(format.Timestamp(seg.StartTime)+" - "+format.Timestamp(seg.EndTime)) + "  " +
			ui.Sentiment(format.SentimentClass(seg.Sentiment)).Render(format.SentimentLabel(seg.Sentiment))
		lines = append(lines, "  "+header)
		for _, wrapped := range WrapText(seg.Text, width-4) {
			lines = append(lines, "    "+wrapped)
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
