// Package config holds the editor's runtime configuration.
package config

import (
	"encoding/json"
	"os"

	"github.com/ironsheep/image-editor-mcp/internal/imaging"
	"github.com/ironsheep/image-editor-mcp/internal/logging"
)

// EnvLogLevel overrides the log level from the environment.
const EnvLogLevel = "IMAGE_EDITOR_LOG_LEVEL"

// Config holds runtime configuration. Fields may be loaded from a JSON file
// and overridden by the environment or command-line flags.
type Config struct {
	LogLevel string `json:"log_level"`

	// Output
	JPEGQuality int `json:"jpeg_quality"`

	// Display panel; zero shows the image at 1:1
	PanelWidth  int `json:"panel_width"`
	PanelHeight int `json:"panel_height"`

	// Loading
	AutoOrient bool `json:"auto_orient"`

	// Rendering
	BackgroundColor string `json:"background_color"`
	MarkerColor     string `json:"marker_color"`
	MarkerRadius    int    `json:"marker_radius"`
	PointLabels     bool   `json:"point_labels"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:        "info",
		JPEGQuality:     imaging.DefaultJPEGQuality,
		PanelWidth:      0,
		PanelHeight:     0,
		AutoOrient:      false,
		BackgroundColor: "#EEEEEE",
		MarkerColor:     "#FF0000",
		MarkerRadius:    5,
		PointLabels:     false,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	d := DefaultConfig()
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		c.LogLevel = d.LogLevel
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		c.JPEGQuality = d.JPEGQuality
	}
	if c.PanelWidth < 0 {
		c.PanelWidth = 0
	}
	if c.PanelHeight < 0 {
		c.PanelHeight = 0
	}
	if _, err := imaging.ParseHexColor(c.BackgroundColor); err != nil {
		c.BackgroundColor = d.BackgroundColor
	}
	if _, err := imaging.ParseHexColor(c.MarkerColor); err != nil {
		c.MarkerColor = d.MarkerColor
	}
	if c.MarkerRadius <= 0 {
		c.MarkerRadius = d.MarkerRadius
	}
	return nil
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
