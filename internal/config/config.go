// Package config loads YAML configuration files for the vollmacht CLI.
// Config values pre-fill the form; flags override them.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-vollmacht/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
)

// Field length limits. The values end up inside A4 table cells, so anything
// past these bounds is garbage input rather than a real form.
const (
	MaxNameLength     = 100  // Surname or first name
	MaxAddressLength  = 200  // Street, number, city on one line
	MaxCityLength     = 100  // City for the date line
	MaxDateLength     = 30   // "15.03.2024" or free text
	MaxRemarksLength  = 500  // Optional remarks paragraph
	MaxPathLength     = 2048 // Signature image / output path
	MaxLanguageLength = 10   // "de", "en", "ar"
	MaxTitleKeyLength = 100  // Localization key for the title
)

// Config holds all configuration for document generation.
type Config struct {
	Language  string          `yaml:"language"`
	Form      FormConfig      `yaml:"form"`
	Page      PageConfig      `yaml:"page"`
	Signature SignatureConfig `yaml:"signature"`
	Output    OutputConfig    `yaml:"output"`
}

// FormConfig pre-fills the form fields.
type FormConfig struct {
	Grantor PartyConfig `yaml:"grantor"`
	Grantee PartyConfig `yaml:"grantee"`
	City    string      `yaml:"city"`
	Date    string      `yaml:"date"`    // Empty = today
	Remarks string      `yaml:"remarks"` // Optional, Markdown inline markup
}

// PartyConfig holds one party's personal data.
type PartyConfig struct {
	Name      string `yaml:"name"`
	FirstName string `yaml:"firstName"`
	BirthDate string `yaml:"birthDate"`
	Address   string `yaml:"address"`
}

// PageConfig defines page layout options in points.
type PageConfig struct {
	MarginLeft   float64 `yaml:"marginLeft"`   // default: 40
	MarginRight  float64 `yaml:"marginRight"`  // default: 40
	MarginTop    float64 `yaml:"marginTop"`    // default: 36
	MarginBottom float64 `yaml:"marginBottom"` // default: 36
	TitleKey     string  `yaml:"titleKey"`     // default: "app.title"
}

// SignatureConfig defines signature image options.
type SignatureConfig struct {
	ImagePath string  `yaml:"imagePath"`   // PNG/JPEG/WebP/BMP file
	Width     float64 `yaml:"widthPt"`     // default: 180
	MaxHeight float64 `yaml:"maxHeightPt"` // default: 80
}

// OutputConfig defines the output destination.
type OutputConfig struct {
	Path string `yaml:"path"` // default: vollmacht_formular.pdf
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrConfigParse, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field lengths. Called automatically by Load, but available
// for consumers who construct Config manually.
func (c *Config) Validate() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"language", c.Language, MaxLanguageLength},
		{"form.grantor.name", c.Form.Grantor.Name, MaxNameLength},
		{"form.grantor.firstName", c.Form.Grantor.FirstName, MaxNameLength},
		{"form.grantor.birthDate", c.Form.Grantor.BirthDate, MaxDateLength},
		{"form.grantor.address", c.Form.Grantor.Address, MaxAddressLength},
		{"form.grantee.name", c.Form.Grantee.Name, MaxNameLength},
		{"form.grantee.firstName", c.Form.Grantee.FirstName, MaxNameLength},
		{"form.grantee.birthDate", c.Form.Grantee.BirthDate, MaxDateLength},
		{"form.grantee.address", c.Form.Grantee.Address, MaxAddressLength},
		{"form.city", c.Form.City, MaxCityLength},
		{"form.date", c.Form.Date, MaxDateLength},
		{"form.remarks", c.Form.Remarks, MaxRemarksLength},
		{"page.titleKey", c.Page.TitleKey, MaxTitleKeyLength},
		{"signature.imagePath", c.Signature.ImagePath, MaxPathLength},
		{"output.path", c.Output.Path, MaxPathLength},
	}

	for _, chk := range checks {
		if err := validateFieldLength(chk.field, chk.value, chk.max); err != nil {
			return err
		}
	}
	return nil
}

func validateFieldLength(field, value string, max int) error {
	if len(value) > max {
		return fmt.Errorf("%w: %s (%d bytes, max %d)", ErrFieldTooLong, field, len(value), max)
	}
	return nil
}
