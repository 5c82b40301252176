package tier

// Level buckets a tier index into how expensive it feels. The UI maps
// levels to colours.
type Level int

const (
	LevelLow Level = iota
	LevelModerate
	LevelElevated
	LevelHigh
	LevelPeak
)

// LevelOf returns the level for a tier index. Indexes past LevelHigh are peak.
func LevelOf(index int) Level {
	switch {
	case index <= 0:
		return LevelLow
	case index == 1:
		return LevelModerate
	case index == 2:
		return LevelElevated
	case index == 3:
		return LevelHigh
	default:
		return LevelPeak
	}
}

func (l Level) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelModerate:
		return "moderate"
	case LevelElevated:
		return "elevated"
	case LevelHigh:
		return "high"
	case LevelPeak:
		return "peak"
	default:
		return "unknown"
	}
}
