// Package text builds the markdown prose for the built-in scenes. Rendering
// to the terminal happens in the ui package (glamour).
package text

import (
	"fmt"
	"strings"

	"github.com/davevdl/redline/internal/config"
)

// BootMarkdown is the splash shown while the menu hand-off is in flight.
func BootMarkdown(version string) string {
	var b strings.Builder
	b.WriteString("# REDLINE\n\n")
	b.WriteString(fmt.Sprintf("Version %s\n\n", version))
	b.WriteString("Booting…\n")
	return b.String()
}

// MenuMarkdown is the main menu body.
func MenuMarkdown(version string, gameplayScene string) string {
	var b strings.Builder
	b.WriteString("# REDLINE\n\n")
	b.WriteString("## MAIN MENU\n\n")
	b.WriteString(fmt.Sprintf("1. Start (%s)\n", gameplayScene))
	b.WriteString("2. Quit\n\n")
	b.WriteString(fmt.Sprintf("_%s_\n", version))
	return b.String()
}

// GameplayMarkdown surfaces the camera tuning the renderer will consume.
// Values are shown exactly as authored; this core never re-clamps them.
func GameplayMarkdown(a *config.Asset) string {
	if a == nil {
		return "[no configuration asset]"
	}
	var b strings.Builder
	b.WriteString("# GAMEPLAY\n\n")
	b.WriteString("(placeholder arena)\n\n")
	b.WriteString("## CAMERA\n")
	b.WriteString(fmt.Sprintf("- FOV: %.1f\n", a.DefaultFOV()))
	b.WriteString(fmt.Sprintf("- Shake intensity: %.2f\n", a.CameraShakeIntensity()))
	b.WriteString(fmt.Sprintf("- Respawn fade: %.2fs\n", a.RespawnFadeDuration()))
	return b.String()
}
