package engine

import "strconv"

// Config holds the scheduler tunables.
type Config struct {
	Rows        int
	Cols        int
	Seed        int64
	FreezeTicks int
	Speed       float64
	MaxSwipes   int
}

// DefaultConfig returns the standard gallery tuning.
func DefaultConfig() Config {
	return Config{
		Rows:        48,
		Cols:        64,
		Seed:        1337,
		FreezeTicks: 20,
		Speed:       1.0,
		MaxSwipes:   1,
	}
}

// FromMap overlays key/value pairs onto the defaults. Unknown keys and
// unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["freeze_ticks"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.FreezeTicks = parsed
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Speed = parsed
		}
	}
	if v, ok := cfg["max_swipes"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.MaxSwipes = parsed
		}
	}
	return c
}

// normalized clamps the tunables to their working ranges. Grid dimensions
// are left alone; the grid constructor clamps those itself.
func (c Config) normalized() Config {
	if c.FreezeTicks < 0 {
		c.FreezeTicks = 0
	}
	if c.Speed <= 0 {
		c.Speed = 1
	}
	if c.MaxSwipes < 1 {
		c.MaxSwipes = 1
	}
	return c
}

// optionsMap renders the program tunables in the registry's map format.
func (c Config) optionsMap() map[string]string {
	return map[string]string{
		"speed":      strconv.FormatFloat(c.Speed, 'g', -1, 64),
		"max_swipes": strconv.Itoa(c.MaxSwipes),
	}
}
