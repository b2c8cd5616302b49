package tui

import "strings"

type welcomeModel struct {
	idx     int
	items   []string
	offline bool
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{
		items: []string{"Sign in", "Create account"},
	}
}

func (m welcomeModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Clinic Sync"))
	b.WriteString("\n\n")
	if m.offline {
		b.WriteString(offlineStyle.Render("server unreachable — offline mode"))
		b.WriteString("\n\n")
	}
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor + item + "\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select · enter confirm · q quit"))
	return b.String()
}
