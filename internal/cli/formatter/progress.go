package formatter

import "github.com/charmbracelet/bubbles/progress"

// Bar renders a static progress bar at the given completion ratio.
// Generation runs phase by phase rather than inside an event loop, so the
// bar is drawn once per phase instead of animating.
func Bar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	return bar.ViewAs(pct)
}
