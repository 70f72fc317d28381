package vollmacht

import (
	"fmt"

	"github.com/alnah/go-vollmacht/internal/assets"
)

// Table maps localization keys to translated strings.
type Table map[string]string

// DefaultLanguage is the language the document falls back to; the form's
// legal boilerplate is German regardless of the interface language.
const DefaultLanguage = "de"

// Resolve looks up key in table. A missing key resolves to fallback, or to
// the key itself when fallback is empty, so missing translations degrade to
// visible raw keys instead of failing. Total for any key and any table,
// including nil.
func Resolve(key string, table Table, fallback string) string {
	if v, ok := table[key]; ok {
		return v
	}
	if fallback != "" {
		return fallback
	}
	return key
}

// Resolve looks up key in the table with the package-level fallback chain.
func (t Table) Resolve(key, fallback string) string {
	return Resolve(key, t, fallback)
}

// Language loads the embedded localization table for a language code.
// Returns ErrUnknownLanguage for codes without an embedded table.
func Language(code string) (Table, error) {
	m, err := assets.LoadLanguage(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
	return Table(m), nil
}

// Languages lists the embedded language codes in stable order.
func Languages() []string {
	return assets.Languages()
}
