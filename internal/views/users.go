package views

import (
	"strings"

	"github.com/transcall/transcall/internal/api"
	"github.com/transcall/transcall/internal/format"
	"github.com/transcall/transcall/internal/ui"
)

var userWidths = []int{22, 30, 16, 18}

var userTitles = []string{"Nome", "Email", "Papel", "Último login"}

// UsersTable renders the organization's member list.
func UsersTable(users []api.User, selected int) string {
	var lines []string
	lines = append(lines, "  "+headerRow(userTitles, userWidths))

	if len(users) == 0 {
		lines = append(lines, "  "+placeholderRow("Nenhum usuário encontrado", userWidths))
		return strings.Join(lines, "\n")
	}

	for i, user := range users {
		lastLogin := format.Date(user.LastLogin)
		if lastLogin == "" {
			lastLogin = "Nunca"
		}

		row := cursor(i == selected) +
			Cell(user.Name, userWidths[0]) + "  " +
			Cell(user.Email, userWidths[1]) + "  " +
			PadRight(roleBadge(user.Role), userWidths[2]) + "  " +
			Cell(lastLogin, userWidths[3])
		lines = append(lines, row)
	}

	return strings.Join(lines, "\n")
}

func roleBadge(role string) string {
	label := format.Role(role)
	switch role {
	case "admin":
		return ui.BadgeDangerStyle.Render(label)
	case "manager":
		return ui.BadgeWarningStyle.Render(label)
	default:
		return ui.BadgeInfoStyle.Render(label)
	}
}
