package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "Supprimer « " + m.message + " » ?\n\n"
	content += "y oui    n non"
	return overlayBoxStyle.Render(content)
}
