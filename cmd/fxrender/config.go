package main

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/fx"
)

// Config describes one rendering job. Omitted keys keep their defaults.
type Config struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Scale      float64 `toml:"scale"`
	Quality    string  `toml:"quality"`
	ColorSpace string  `toml:"color_space"`
	Output     string  `toml:"output"`

	Background BackgroundConfig `toml:"background"`
	Shape      ShapeConfig      `toml:"shape"`
	Image      ImageConfig      `toml:"image"`
}

// BackgroundConfig is the canvas fill, optionally mixed with noise.
type BackgroundConfig struct {
	Color      string           `toml:"color"`
	Turbulence TurbulenceConfig `toml:"turbulence"`
}

// TurbulenceConfig enables a noise layer when Opacity is positive.
type TurbulenceConfig struct {
	BaseFrequency float64 `toml:"base_frequency"`
	Octaves       int     `toml:"octaves"`
	Seed          int     `toml:"seed"`
	Fractal       bool    `toml:"fractal"`
	Opacity       float64 `toml:"opacity"`
}

// ShapeConfig is a filled star with optional blur and drop shadow.
type ShapeConfig struct {
	Color  string       `toml:"color"`
	Points int          `toml:"points"`
	Blur   float64      `toml:"blur"`
	Shadow ShadowConfig `toml:"shadow"`
}

// ShadowConfig is disabled when Color is empty.
type ShadowConfig struct {
	Color   string  `toml:"color"`
	Opacity float64 `toml:"opacity"`
	DX      float64 `toml:"dx"`
	DY      float64 `toml:"dy"`
	Blur    float64 `toml:"blur"`
}

// ImageConfig places an external image; disabled when URL is empty.
type ImageConfig struct {
	URL     string  `toml:"url"`
	X       float64 `toml:"x"`
	Y       float64 `toml:"y"`
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	MaxSize int     `toml:"max_size"`
}

// DefaultConfig returns the built-in demo scene.
func DefaultConfig() Config {
	return Config{
		Width:      640,
		Height:     480,
		Scale:      1,
		Quality:    "default",
		ColorSpace: "srgb",
		Output:     "fxrender.png",
		Background: BackgroundConfig{
			Color: "#1e2430",
			Turbulence: TurbulenceConfig{
				BaseFrequency: 0.015,
				Octaves:       4,
				Seed:          7,
				Fractal:       true,
				Opacity:       0.35,
			},
		},
		Shape: ShapeConfig{
			Color:  "#e07a2f",
			Points: 5,
			Shadow: ShadowConfig{
				Color:   "#000000",
				Opacity: 0.6,
				DX:      10,
				DY:      12,
				Blur:    6,
			},
		},
	}
}

// LoadConfig decodes TOML from r over the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config: unknown keys %s", strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// WriteConfig encodes cfg as TOML.
func WriteConfig(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: canvas %dx%d must be positive", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("config: scale %g must be positive", c.Scale)
	}
	if _, err := c.rendering(); err != nil {
		return err
	}
	if _, err := c.colorSpace(); err != nil {
		return err
	}
	if c.Shape.Points < 0 || c.Shape.Points == 1 || c.Shape.Points == 2 {
		return fmt.Errorf("config: star needs at least 3 points, got %d", c.Shape.Points)
	}
	if c.Image.URL != "" && (c.Image.Width <= 0 || c.Image.Height <= 0) {
		return fmt.Errorf("config: image size %gx%g must be positive", c.Image.Width, c.Image.Height)
	}
	return nil
}

func (c Config) rendering() (fx.Rendering, error) {
	switch strings.ToLower(c.Quality) {
	case "", "default":
		return fx.RenderDefault, nil
	case "quality":
		return fx.RenderQuality, nil
	case "speed":
		return fx.RenderSpeed, nil
	}
	return 0, fmt.Errorf("config: unknown quality %q", c.Quality)
}

func (c Config) colorSpace() (fx.ColorSpace, error) {
	switch strings.ToLower(c.ColorSpace) {
	case "", "srgb":
		return fx.ColorSRGB, nil
	case "linearrgb", "linear":
		return fx.ColorLinearRGB, nil
	}
	return 0, fmt.Errorf("config: unknown color space %q", c.ColorSpace)
}

// Hints returns the rendering hints selected by the config.
func (c Config) Hints() fx.Hints {
	q, _ := c.rendering()
	cs, _ := c.colorSpace()
	return fx.Hints{}.With(fx.HintRendering, q).With(fx.HintColorInterpolation, cs)
}

// parseColor reads "#rrggbb" with a separate opacity in [0, 1].
func parseColor(hex string, opacity float64) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("config: color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	a := min(max(opacity, 0), 1)
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}, nil
}
