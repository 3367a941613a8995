// Package format holds the display formatting rules shared by every view:
// dates, durations, sentiment classification and status badges.
package format

import (
	"fmt"
	"math"
	"time"
)

// Sentiment classes. Scores of 0.3 and -0.3 belong to positive and negative
// respectively; everything strictly between is neutral.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// SentimentClass classifies a backend sentiment score in [-1, 1].
func SentimentClass(score float64) string {
	switch {
	case score >= 0.3:
		return SentimentPositive
	case score <= -0.3:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// SentimentLabel returns the user-facing label for a sentiment score.
func SentimentLabel(score float64) string {
	switch SentimentClass(score) {
	case SentimentPositive:
		return "Positivo"
	case SentimentNegative:
		return "Negativo"
	default:
		return "Neutro"
	}
}

// StatusBadge returns the badge style class for a recording status.
func StatusBadge(status string) string {
	switch status {
	case "completed":
		return "success"
	case "processing":
		return "warning"
	case "error":
		return "danger"
	default:
		return "info"
	}
}

// StatusLabel returns the user-facing label for a recording status.
func StatusLabel(status string) string {
	switch status {
	case "completed":
		return "Concluído"
	case "processing":
		return "Processando"
	case "error":
		return "Erro"
	default:
		return "Pendente"
	}
}

// Duration formats seconds as MM:SS, flooring fractional seconds.
// Zero and negative values render as 00:00.
func Duration(seconds float64) string {
	if seconds <= 0 || math.IsNaN(seconds) {
		return "00:00"
	}
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// Timestamp formats an offset in seconds as MM:SS, same rules as Duration.
func Timestamp(seconds float64) string {
	return Duration(seconds)
}

// timestampLayouts are the shapes the backend emits for created_at values.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(iso string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date formats an ISO timestamp as DD/MM/YYYY. Absent or unparsable input
// renders as the empty string.
func Date(iso string) string {
	t, ok := parseTimestamp(iso)
	if !ok {
		return ""
	}
	return t.Format("02/01/2006")
}

// Time formats an ISO timestamp as HH:MM. Absent or unparsable input renders
// as the empty string.
func Time(iso string) string {
	t, ok := parseTimestamp(iso)
	if !ok {
		return ""
	}
	return t.Format("15:04")
}

// Role translates a backend role name for display.
func Role(role string) string {
	switch role {
	case "admin":
		return "Administrador"
	case "manager":
		return "Gerente"
	case "operator":
		return "Operador"
	case "":
		return "Usuário"
	default:
		return role
	}
}

// Plan translates an organization plan name for display.
func Plan(plan string) string {
	switch plan {
	case "basic":
		return "Básico"
	case "pro":
		return "Profissional"
	case "enterprise":
		return "Empresarial"
	default:
		return plan
	}
}
