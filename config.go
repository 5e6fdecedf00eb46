package vjoy

import (
	"fmt"
	"os"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Config is a joystick layout loaded from YAML:
//
//	joysticks:
//	  - name: move
//	    bounds: {x: 20, y: 300, width: 160, height: 160}
//	    placement: floating
//	    axes: [horizontal]
//	    dead_zone: 0.1
//	    knob_return: 0.15
type Config struct {
	Joysticks []JoystickConfig `yaml:"joysticks"`
}

// JoystickConfig describes one joystick in a layout file.
type JoystickConfig struct {
	Name       string     `yaml:"name"`
	Bounds     RectConfig `yaml:"bounds"`
	Placement  string     `yaml:"placement"`
	Axes       []string   `yaml:"axes"`
	DeadZone   float64    `yaml:"dead_zone"`
	EntityID   uint32     `yaml:"entity_id"`
	KnobReturn float32    `yaml:"knob_return"`
	KnobEase   string     `yaml:"knob_ease"`
}

// RectConfig is the YAML form of a Rect.
type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

var easings = map[string]ease.TweenFunc{
	"linear":    ease.Linear,
	"outquad":   ease.OutQuad,
	"outcubic":  ease.OutCubic,
	"outback":   ease.OutBack,
	"outbounce": ease.OutBounce,
	"outsine":   ease.OutSine,
}

// LoadConfig parses and validates a YAML layout.
func LoadConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfigFile reads and parses a YAML layout file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout %s: %w", path, err)
	}
	cfg, err := LoadConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks names, placement, axes and easing. Dead zones are not
// rejected here; Controller.Add clamps them.
func (cfg *Config) Validate() error {
	if len(cfg.Joysticks) == 0 {
		return fmt.Errorf("layout has no joysticks")
	}
	seen := make(map[string]bool, len(cfg.Joysticks))
	for i, jc := range cfg.Joysticks {
		if jc.Name == "" {
			return fmt.Errorf("joystick %d: missing name", i)
		}
		if seen[jc.Name] {
			return fmt.Errorf("joystick %q: duplicate name", jc.Name)
		}
		seen[jc.Name] = true
		if _, err := jc.Options(); err != nil {
			return fmt.Errorf("joystick %q: %w", jc.Name, err)
		}
	}
	return nil
}

// Options converts the YAML entry into creation options.
func (jc JoystickConfig) Options() (Options, error) {
	placement, err := ParsePlacement(jc.Placement)
	if err != nil {
		return Options{}, err
	}
	var axes []Axis
	for _, s := range jc.Axes {
		a, err := ParseAxis(s)
		if err != nil {
			return Options{}, err
		}
		axes = append(axes, a)
	}
	var fn ease.TweenFunc
	if jc.KnobEase != "" {
		var ok bool
		if fn, ok = easings[jc.KnobEase]; !ok {
			return Options{}, fmt.Errorf("unknown knob_ease %q", jc.KnobEase)
		}
	}
	return Options{
		Geometry: Geometry{Bounds: Rect{
			X: jc.Bounds.X, Y: jc.Bounds.Y,
			Width: jc.Bounds.Width, Height: jc.Bounds.Height,
		}},
		Behavior:   Behavior{Placement: placement, Axes: axes},
		DeadZone:   jc.DeadZone,
		EntityID:   jc.EntityID,
		KnobReturn: jc.KnobReturn,
		KnobEase:   fn,
	}, nil
}

// AddFromConfig creates every joystick in the layout, in file order.
func (c *Controller) AddFromConfig(cfg *Config) ([]*Joystick, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	out := make([]*Joystick, 0, len(cfg.Joysticks))
	for _, jc := range cfg.Joysticks {
		opts, _ := jc.Options()
		out = append(out, c.Add(jc.Name, opts))
	}
	return out, nil
}
