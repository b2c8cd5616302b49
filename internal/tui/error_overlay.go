package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render(errorStyle.Render("Error") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter close"))
}
