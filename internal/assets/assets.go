package assets

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/alnah/go-vollmacht/internal/yamlutil"
)

//go:embed styles/*
var styles embed.FS

//go:embed templates/*
var templates embed.FS

//go:embed i18n/*
var i18n embed.FS

// LoadStyle loads a CSS style from embedded assets by name.
// The name should not include the .css extension.
func LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}

// LoadTemplate loads an HTML template from embedded assets by name.
// The name should not include the .html extension.
func LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// LoadLanguage loads a localization table by language code ("de", "en", "ar").
// The tables ship as JSON, which the YAML layer parses directly.
func LoadLanguage(code string) (map[string]string, error) {
	if err := ValidateAssetName(code); err != nil {
		return nil, err
	}

	content, err := i18n.ReadFile("i18n/" + code + ".json")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrLanguageNotFound, code)
	}

	var table map[string]string
	if err := yamlutil.Unmarshal(content, &table); err != nil {
		return nil, fmt.Errorf("parsing language %q: %w", code, err)
	}

	return table, nil
}

// Languages lists the embedded language codes in sorted order.
func Languages() []string {
	entries, err := i18n.ReadDir("i18n")
	if err != nil {
		return nil
	}

	codes := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".json"); ok {
			codes = append(codes, name)
		}
	}
	sort.Strings(codes)
	return codes
}
