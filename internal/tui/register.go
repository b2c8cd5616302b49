package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	login := textinput.New()
	login.Placeholder = "login"
	login.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	repeat := textinput.New()
	repeat.Placeholder = "repeat password"
	repeat.EchoMode = textinput.EchoPassword

	return registerModel{inputs: []textinput.Model{login, password, repeat}}
}

func (m registerModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Create account"))
	b.WriteString("\n\n")
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	if m.submitting {
		b.WriteString("\nregistering...\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab next field · enter submit · esc back"))
	return b.String()
}
