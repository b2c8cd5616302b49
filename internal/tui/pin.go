package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type pinMode int

const (
	pinModeUnlock pinMode = iota
	pinModeSetup
)

// pinModel is the offline gate: unlock asks for the device PIN when the
// server cannot be reached, setup offers to configure one after an online
// sign-in so the next offline launch is not locked out.
type pinModel struct {
	mode       pinMode
	input      textinput.Model
	submitting bool
}

func newPINModel(mode pinMode) pinModel {
	input := textinput.New()
	input.Placeholder = "PIN"
	input.EchoMode = textinput.EchoPassword
	input.CharLimit = 12
	input.Focus()

	return pinModel{mode: mode, input: input}
}

func (m pinModel) View() string {
	var b strings.Builder
	switch m.mode {
	case pinModeUnlock:
		b.WriteString(titleStyle.Render("Offline unlock"))
		b.WriteString("\n\n")
		b.WriteString(offlineStyle.Render("server unreachable — enter your device PIN"))
	case pinModeSetup:
		b.WriteString(titleStyle.Render("Set device PIN"))
		b.WriteString("\n\n")
		b.WriteString("A PIN lets you open your records when the server is unreachable.")
	}
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.mode == pinModeSetup {
		b.WriteString(helpStyle.Render("enter save · esc skip"))
	} else {
		b.WriteString(helpStyle.Render("enter unlock · q quit"))
	}
	return b.String()
}
