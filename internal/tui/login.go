package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	login := textinput.New()
	login.Placeholder = "login"
	login.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	return loginModel{inputs: []textinput.Model{login, password}}
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sign in"))
	b.WriteString("\n\n")
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	if m.submitting {
		b.WriteString("\nsigning in...\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab next field · enter submit · esc back"))
	return b.String()
}
