package gekko

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// AmbientLightConfig is the on-disk form of the scene ambient light.
// Unset fields fall back to the default ambient light.
type AmbientLightConfig struct {
	Color      ConfigColor `yaml:"color,omitempty"`
	Brightness *float32    `yaml:"brightness,omitempty"`
}

// ConfigColor is a color as written in config files: a name or "#rrggbb[aa]"
// string, or a [r, g, b] / [r, g, b, a] float sequence. Sequences are kept
// exactly, HDR values included.
type ConfigColor struct {
	Name string
	RGBA *Color
}

func NamedColor(name string) ConfigColor {
	return ConfigColor{Name: name}
}

func ExactColor(c Color) ConfigColor {
	return ConfigColor{RGBA: &c}
}

func (c ConfigColor) IsZero() bool {
	return c.Name == "" && c.RGBA == nil
}

// Resolve returns the color and whether it could be resolved.
func (c ConfigColor) Resolve() (Color, bool) {
	if c.RGBA != nil {
		return *c.RGBA, true
	}
	return ColorFromName(c.Name)
}

func (c *ConfigColor) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*c = ConfigColor{Name: node.Value}
		return nil
	case yaml.SequenceNode:
		var channels []float32
		if err := node.Decode(&channels); err != nil {
			return fmt.Errorf("color: %w", err)
		}
		rgba := Color{A: 1}
		switch len(channels) {
		case 4:
			rgba.A = channels[3]
			fallthrough
		case 3:
			rgba.R, rgba.G, rgba.B = channels[0], channels[1], channels[2]
		default:
			return fmt.Errorf("color: expected 3 or 4 channels at line %d, got %d", node.Line, len(channels))
		}
		*c = ConfigColor{RGBA: &rgba}
		return nil
	default:
		return fmt.Errorf("color: expected a name or a channel sequence at line %d", node.Line)
	}
}

func (c ConfigColor) MarshalYAML() (any, error) {
	if c.RGBA == nil {
		return c.Name, nil
	}
	var node yaml.Node
	if err := node.Encode([]float32{c.RGBA.R, c.RGBA.G, c.RGBA.B, c.RGBA.A}); err != nil {
		return nil, err
	}
	node.Style = yaml.FlowStyle
	return &node, nil
}

type ambientLightFile struct {
	Ambient AmbientLightConfig `yaml:"ambient_light"`
}

// ambientLightEnv mirrors AmbientLightConfig for GEKKO_AMBIENT_* variables.
type ambientLightEnv struct {
	Color      string   `env:"COLOR"`
	Brightness *float32 `env:"BRIGHTNESS"`
}

const ambientEnvPrefix = "GEKKO_AMBIENT_"

// LoadAmbientLightConfig reads a yaml file and applies environment overrides.
func LoadAmbientLightConfig(path string) (AmbientLightConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AmbientLightConfig{}, fmt.Errorf("read ambient light config: %w", err)
	}
	cfg, err := ParseAmbientLightConfig(data)
	if err != nil {
		return AmbientLightConfig{}, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return AmbientLightConfig{}, err
	}
	return cfg, nil
}

func ParseAmbientLightConfig(data []byte) (AmbientLightConfig, error) {
	var file ambientLightFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return AmbientLightConfig{}, fmt.Errorf("parse ambient light config: %w", err)
	}
	return file.Ambient, nil
}

// ApplyEnv overrides cfg with GEKKO_AMBIENT_COLOR and GEKKO_AMBIENT_BRIGHTNESS.
func ApplyEnv(cfg *AmbientLightConfig) error {
	var vars ambientLightEnv
	if err := env.ParseWithOptions(&vars, env.Options{Prefix: ambientEnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if vars.Color != "" {
		cfg.Color = NamedColor(vars.Color)
	}
	if vars.Brightness != nil {
		cfg.Brightness = vars.Brightness
	}
	return nil
}

// AmbientLight resolves the config. Brightness is taken as is.
func (cfg AmbientLightConfig) AmbientLight() (AmbientLight, error) {
	ambient := NewAmbientLight()
	if !cfg.Color.IsZero() {
		c, ok := cfg.Color.Resolve()
		if !ok {
			return AmbientLight{}, fmt.Errorf("unknown ambient light color %q", cfg.Color.Name)
		}
		ambient.Color = c
	}
	if cfg.Brightness != nil {
		ambient.Brightness = *cfg.Brightness
	}
	return ambient, nil
}

// SaveAmbientLightConfig writes ambient to path in the format
// LoadAmbientLightConfig reads. Channels are written as floats.
func SaveAmbientLightConfig(path string, ambient AmbientLight) error {
	brightness := ambient.Brightness
	file := ambientLightFile{Ambient: AmbientLightConfig{
		Color:      ExactColor(ambient.Color),
		Brightness: &brightness,
	}}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("encode ambient light config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write ambient light config: %w", err)
	}
	return nil
}
