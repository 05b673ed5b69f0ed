package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hairharmony/internal/ui/theme"
)

const bannerArt = `
 ██╗  ██╗ █████╗ ██╗██████╗
 ██║  ██║██╔══██╗██║██╔══██╗
 ███████║███████║██║██████╔╝
 ██╔══██║██╔══██║██║██╔══██╗
 ██║  ██║██║  ██║██║██║  ██║
 ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝╚═╝  ╚═╝
        H A R M O N Y`

const bannerCompact = "H A I R  H A R M O N Y"

// RenderBanner returns the banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 40 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
