package engine

// ColorMode selects how the two cell states are tinted on screen. The
// scheduler advances the mode by one step after every program completion,
// so the palette drifts through all four combinations over time.
type ColorMode int

const (
	// ModeBothColor renders clay and brick in their natural colors.
	ModeBothColor ColorMode = iota
	// ModeBrickGray renders brick desaturated, clay in color.
	ModeBrickGray
	// ModeClayGray renders clay desaturated, brick in color.
	ModeClayGray
	// ModeBothGray renders both states desaturated.
	ModeBothGray

	modeCount
)

// Next returns the mode that follows m in the fixed cycle.
func (m ColorMode) Next() ColorMode {
	return (m + 1) % modeCount
}

// String names the mode for display.
func (m ColorMode) String() string {
	switch m {
	case ModeBothColor:
		return "both-color"
	case ModeBrickGray:
		return "brick-gray"
	case ModeClayGray:
		return "clay-gray"
	case ModeBothGray:
		return "both-gray"
	}
	return "unknown"
}
