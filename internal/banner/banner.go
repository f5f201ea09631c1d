package banner

import (
	"speedcheck/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

func GetString() string {
	renderer := lipgloss.DefaultRenderer()

	style := renderer.NewStyle().
		Foreground(styles.ColorBanner).
		Bold(true)

	ascii := `
                         _      _               _
 ___ _ __   ___  ___  __| | ___| |__   ___  ___| | __
/ __| '_ \ / _ \/ _ \/ _' |/ __| '_ \ / _ \/ __| |/ /
\__ \ |_) |  __/  __/ (_| | (__| | | |  __/ (__|   <
|___/ .__/ \___|\___|\__,_|\___|_| |_|\___|\___|_|\_\
    |_|                                              `

	return "\n" + style.Render(ascii) + "\n"
}
