package scrollpane

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ScrollConfig holds the designer-facing pane settings. It round-trips
// through TOML:
//
//	horizontal = true
//	vertical = true
//	movement = "elastic"
//	elasticity = 0.1
//	inertia = true
//	deceleration_rate = 0.135
//	scroll_sensitivity = 1.0
type ScrollConfig struct {
	Horizontal        bool         `toml:"horizontal"`
	Vertical          bool         `toml:"vertical"`
	Movement          MovementType `toml:"movement"`
	Elasticity        float64      `toml:"elasticity"`
	Inertia           bool         `toml:"inertia"`
	DecelerationRate  float64      `toml:"deceleration_rate"`
	ScrollSensitivity float64      `toml:"scroll_sensitivity"`
}

// DefaultScrollConfig returns both axes enabled, elastic movement with a 0.1s
// spring, and inertia keeping 13.5% of speed per second.
func DefaultScrollConfig() ScrollConfig {
	return ScrollConfig{
		Horizontal:        true,
		Vertical:          true,
		Movement:          MovementElastic,
		Elasticity:        0.1,
		Inertia:           true,
		DecelerationRate:  0.135,
		ScrollSensitivity: 1.0,
	}
}

// LoadScrollConfig parses TOML on top of DefaultScrollConfig, so omitted keys
// keep their defaults, and validates the result.
func LoadScrollConfig(data []byte) (ScrollConfig, error) {
	cfg := DefaultScrollConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return ScrollConfig{}, fmt.Errorf("parse scroll config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return ScrollConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as TOML.
func (c ScrollConfig) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode scroll config: %w", err)
	}
	return data, nil
}

// Validate reports out-of-range settings.
func (c ScrollConfig) Validate() error {
	if c.Movement != MovementElastic && c.Movement != MovementClamped {
		return fmt.Errorf("scroll config: unknown movement type %d", c.Movement)
	}
	if c.Elasticity <= 0 {
		return fmt.Errorf("scroll config: elasticity must be positive, got %v", c.Elasticity)
	}
	if c.DecelerationRate < 0 || c.DecelerationRate > 1 {
		return fmt.Errorf("scroll config: deceleration_rate %v outside [0, 1]", c.DecelerationRate)
	}
	return nil
}

// ApplyConfig copies cfg onto the pane's public settings.
func (p *ScrollPane) ApplyConfig(cfg ScrollConfig) {
	p.Horizontal = cfg.Horizontal
	p.Vertical = cfg.Vertical
	p.MovementType = cfg.Movement
	p.Elasticity = cfg.Elasticity
	p.Inertia = cfg.Inertia
	p.DecelerationRate = cfg.DecelerationRate
	p.ScrollSensitivity = cfg.ScrollSensitivity
}

// Config returns the pane's current settings.
func (p *ScrollPane) Config() ScrollConfig {
	return ScrollConfig{
		Horizontal:        p.Horizontal,
		Vertical:          p.Vertical,
		Movement:          p.MovementType,
		Elasticity:        p.Elasticity,
		Inertia:           p.Inertia,
		DecelerationRate:  p.DecelerationRate,
		ScrollSensitivity: p.ScrollSensitivity,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m MovementType) MarshalText() ([]byte, error) {
	switch m {
	case MovementElastic, MovementClamped:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("unknown movement type %d", m)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are
// case-insensitive.
func (m *MovementType) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "elastic":
		*m = MovementElastic
	case "clamped":
		*m = MovementClamped
	default:
		return fmt.Errorf("unknown movement type %q", text)
	}
	return nil
}
