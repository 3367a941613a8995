package views

import (
	"fmt"
	"strings"

	"github.com/transcall/transcall/internal/api"
	"github.com/transcall/transcall/internal/format"
	"github.com/transcall/transcall/internal/ui"
)

// Dashboard renders the stat cards and chart panels for the analytics page.
func Dashboard(stats api.DashboardStats, width int) string {
	if width < 60 {
		width = 60
	}

	var sections []string
	sections = append(sections, statCards(stats))
	sections = append(sections, "")
	sections = append(sections, ui.PanelTitleStyle.Render("Chamadas por Dia"))
	sections = append(sections, callsByDayChart(stats.CallsByDay, width))
	sections = append(sections, "")
	sections = append(sections, ui.PanelTitleStyle.Render("Distribuição de Sentimento"))
	sections = append(sections, sentimentChart(stats.SentimentDistribution, width))
	sections = append(sections, "")
	sections = append(sections, ui.PanelTitleStyle.Render("Principais Palavras-chave"))
	sections = append(sections, keywordsChart(stats.TopKeywords, width))
	sections = append(sections, "")
	sections = append(sections, ui.PanelTitleStyle.Render("Desempenho por Operador"))
	sections = append(sections, operatorsChart(stats.OperatorsPerformance, width))

	return strings.Join(sections, "\n")
}

func statCards(stats api.DashboardStats) string {
	sentiment := ui.Sentiment(format.SentimentClass(stats.AverageSentiment)).
		Render(fmt.Sprintf("%.2f", stats.AverageSentiment))

	cards := []string{
		statCard("Total de Chamadas", fmt.Sprintf("%d", stats.TotalCalls)),
		statCard("TMA Médio", format.Duration(stats.AverageTMA)),
		statCard("Sentimento Médio", sentiment),
		statCard("Momentos Críticos", fmt.Sprintf("%d", stats.CriticalMoments)),
	}
	return strings.Join(cards, "   ")
}

func statCard(label, value string) string {
	return ui.ChartLabelStyle.Render(label+": ") + ui.TitleStyle.Render(value)
}

// bar draws a horizontal meter scaled so the largest value fills barLen.
func bar(value, max int, barLen int) string {
	if max <= 0 {
		max = 1
	}
	filled := value * barLen / max
	if filled > barLen {
		filled = barLen
	}
	return ui.ChartBarStyle.Render(strings.Repeat("█", filled)) +
		ui.DimStyle.Render(strings.Repeat("░", barLen-filled))
}

func callsByDayChart(days []api.DayCount, width int) string {
	if len(days) == 0 {
		return "  " + ui.PlaceholderStyle.Render("Sem dados no período")
	}
	max := 0
	for _, d := range days {
		if d.Count > max {
			max = d.Count
		}
	}
	barLen := width - 26
	if barLen < 10 {
		barLen = 10
	}
	var lines []string
	for _, d := range days {
		lines = append(lines, fmt.Sprintf("  %s %s %s",
			ui.ChartLabelStyle.Render(Cell(d.Date, 10)),
			bar(d.Count, max, barLen),
			ui.DimStyle.Render(fmt.Sprintf("%d", d.Count))))
	}
	return strings.Join(lines, "\n")
}

func sentimentChart(dist api.SentimentDistribution, width int) string {
	total := dist.Positive + dist.Neutral + dist.Negative
	if total == 0 {
		return "  " + ui.PlaceholderStyle.Render("Sem dados no período")
	}
	barLen := width - 26
	if barLen < 10 {
		barLen = 10
	}
	row := func(label string, value int, style string) string {
		return fmt.Sprintf("  %s %s %s",
			ui.Sentiment(style).Render(Cell(label, 10)),
			bar(value, total, barLen),
			ui.DimStyle.Render(fmt.Sprintf("%d", value)))
	}
	return strings.Join([]string{
		row("Positivo", dist.Positive, format.SentimentPositive),
		row("Neutro", dist.Neutral, format.SentimentNeutral),
		row("Negativo", dist.Negative, format.SentimentNegative),
	}, "\n")
}

func keywordsChart(keywords []api.Keyword, width int) string {
	if len(keywords) == 0 {
		return "  " + ui.PlaceholderStyle.Render("Sem dados no período")
	}
	max := 0
	for _, kw := range keywords {
		if kw.Count > max {
			max = kw.Count
		}
	}
	barLen := width - 30
	if barLen < 10 {
		barLen = 10
	}
	var lines []string
	for _, kw := range keywords {
		lines = append(lines, fmt.Sprintf("  %s %s %s",
			ui.ChartLabelStyle.Render(Cell(kw.Text, 14)),
			bar(kw.Count, max, barLen),
			ui.DimStyle.Render(fmt.Sprintf("%d", kw.Count))))
	}
	return strings.Join(lines, "\n")
}

func operatorsChart(operators []api.OperatorPerformance, width int) string {
	if len(operators) == 0 {
		return "  " + ui.PlaceholderStyle.Render("Sem dados no período")
	}
	max := 0
	for _, op := range operators {
		if op.Calls > max {
			max = op.Calls
		}
	}
	barLen := width - 44
	if barLen < 10 {
		barLen = 10
	}
	var lines []string
	for _, op := range operators {
		sentiment := ui.Sentiment(format.SentimentClass(op.Sentiment)).
			Render(fmt.Sprintf("%.2f", op.Sentiment))
		lines = append(lines, fmt.Sprintf("  %s %s %s chamadas, sentimento %s",
			ui.ChartLabelStyle.Render(Cell(op.Name, 16)),
			bar(op.Calls, max, barLen),
			ui.DimStyle.Render(fmt.Sprintf("%d", op.Calls)),
			sentiment))
	}
	return strings.Join(lines, "\n")
}
