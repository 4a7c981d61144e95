package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lymphwatch/internal/ui/theme"
)

const bannerArt = `
 ██╗  ██╗   ██╗███╗   ███╗██████╗ ██╗  ██╗
 ██║  ╚██╗ ██╔╝████╗ ████║██╔══██╗██║  ██║
 ██║   ╚████╔╝ ██╔████╔██║██████╔╝███████║
 ██║    ╚██╔╝  ██║╚██╔╝██║██╔═══╝ ██╔══██║
 ███████╗██║   ██║ ╚═╝ ██║██║     ██║  ██║
 ╚══════╝╚═╝   ╚═╝     ╚═╝╚═╝     ╚═╝  ╚═╝
 W  A  T  C  H`

const bannerCompact = "L Y M P H W A T C H"

// RenderBanner returns the LYMPH WATCH banner in the primary color, with
// a compact fallback for terminals narrower than 46 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 46 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
