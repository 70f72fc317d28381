package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	vollmacht "github.com/alnah/go-vollmacht"
	"github.com/alnah/go-vollmacht/internal/config"
	"github.com/alnah/go-vollmacht/internal/dateutil"
	"github.com/alnah/go-vollmacht/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrUnexpectedArgs   = errors.New("unexpected positional arguments")
	ErrReadSignature    = errors.New("failed to read signature image")
	ErrWritePDF         = errors.New("failed to write PDF file")
	ErrInvalidTimeout   = errors.New("invalid timeout")
	ErrSignatureMissing = errors.New("signature image not found")
)

// DefaultOutputName is the suggested download filename for the form.
const DefaultOutputName = "vollmacht_formular.pdf"

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Generator is the interface for the generation service.
type Generator interface {
	Generate(ctx context.Context, input vollmacht.Input) ([]byte, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Generator = (*vollmacht.Service)(nil)

// newGenerator creates the production service; overridden in tests.
var newGenerator = func(opts ...vollmacht.Option) Generator {
	return vollmacht.New(opts...)
}

// run executes one generation from parsed flags.
func run(flags *cliFlags, args []string, stdout, stderr io.Writer) error {
	if flags.version {
		fmt.Fprintf(stdout, "vollmacht %s\n", Version)
		return nil
	}

	if len(args) > 0 {
		return fmt.Errorf("%w: %s", ErrUnexpectedArgs, strings.Join(args, " "))
	}

	cfg := &config.Config{}
	if flags.common.config != "" {
		loaded, err := config.Load(flags.common.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	input, outputPath, err := buildInput(flags, cfg)
	if err != nil {
		return err
	}

	timeout, err := resolveTimeout(flags.timeout)
	if err != nil {
		return err
	}

	svc := newGenerator(vollmacht.WithTimeout(timeout))
	defer func() { _ = svc.Close() }()

	if flags.common.verbose {
		fmt.Fprintln(stderr, "Generating PDF...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	pdf, err := svc.Generate(ctx, input)
	if err != nil {
		return err
	}

	if err := writeOutput(outputPath, pdf); err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(stdout, "Wrote %s (%d bytes, %s)\n", outputPath, len(pdf), time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// buildInput merges config values and flags (flags win) into a generation
// input plus the resolved output path.
func buildInput(flags *cliFlags, cfg *config.Config) (vollmacht.Input, string, error) {
	data := vollmacht.FormData{
		GrantorName:      firstNonEmpty(flags.form.grantor.name, cfg.Form.Grantor.Name),
		GrantorFirstName: firstNonEmpty(flags.form.grantor.firstName, cfg.Form.Grantor.FirstName),
		GrantorBirthDate: firstNonEmpty(flags.form.grantor.birthDate, cfg.Form.Grantor.BirthDate),
		GrantorAddress:   firstNonEmpty(flags.form.grantor.address, cfg.Form.Grantor.Address),
		GranteeName:      firstNonEmpty(flags.form.grantee.name, cfg.Form.Grantee.Name),
		GranteeFirstName: firstNonEmpty(flags.form.grantee.firstName, cfg.Form.Grantee.FirstName),
		GranteeBirthDate: firstNonEmpty(flags.form.grantee.birthDate, cfg.Form.Grantee.BirthDate),
		GranteeAddress:   firstNonEmpty(flags.form.grantee.address, cfg.Form.Grantee.Address),
		City:             firstNonEmpty(flags.form.city, cfg.Form.City),
		Date:             resolveDate(firstNonEmpty(flags.form.date, cfg.Form.Date)),
		Remarks:          firstNonEmpty(flags.form.remarks, cfg.Form.Remarks),
	}

	trimFields(&data)

	table, err := resolveLanguage(firstNonEmpty(flags.language, cfg.Language))
	if err != nil {
		return vollmacht.Input{}, "", err
	}

	signature, err := readSignature(firstNonEmpty(flags.signature.image, cfg.Signature.ImagePath))
	if err != nil {
		return vollmacht.Input{}, "", err
	}

	opts := &vollmacht.RenderOptions{
		MarginLeft:         firstNonZero(flags.page.marginLeft, cfg.Page.MarginLeft),
		MarginRight:        firstNonZero(flags.page.marginRight, cfg.Page.MarginRight),
		MarginTop:          firstNonZero(flags.page.marginTop, cfg.Page.MarginTop),
		MarginBottom:       firstNonZero(flags.page.marginBottom, cfg.Page.MarginBottom),
		SignatureWidth:     firstNonZero(flags.signature.width, cfg.Signature.Width),
		SignatureMaxHeight: firstNonZero(flags.signature.maxHeight, cfg.Signature.MaxHeight),
		TitleKey:           firstNonEmpty(flags.page.titleKey, cfg.Page.TitleKey),
	}

	outputPath := firstNonEmpty(flags.output, cfg.Output.Path, DefaultOutputName)

	return vollmacht.Input{
		Data:      data,
		Signature: signature,
		I18n:      table,
		Options:   opts,
	}, outputPath, nil
}

// trimFields strips leading/trailing whitespace from all field values; the
// layout expects pre-trimmed input.
func trimFields(d *vollmacht.FormData) {
	for _, p := range []*string{
		&d.GrantorName, &d.GrantorFirstName, &d.GrantorBirthDate, &d.GrantorAddress,
		&d.GranteeName, &d.GranteeFirstName, &d.GranteeBirthDate, &d.GranteeAddress,
		&d.City, &d.Date, &d.Remarks,
	} {
		*p = strings.TrimSpace(*p)
	}
}

// resolveDate defaults an empty date to today and normalizes recognized
// layouts to German display form. Unrecognized input passes through as
// free text; the form accepts it.
func resolveDate(date string) string {
	if date == "" {
		return dateutil.Today()
	}
	if normalized, err := dateutil.Normalize(date); err == nil {
		return normalized
	}
	return date
}

// resolveLanguage loads the embedded table for a language code, defaulting
// to German.
func resolveLanguage(lang string) (vollmacht.Table, error) {
	if lang == "" {
		lang = vollmacht.DefaultLanguage
	}
	table, err := vollmacht.Language(lang)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(vollmacht.Languages(), ", "))
	}
	return table, nil
}

// readSignature reads the signature image file if a path was given.
// A missing or non-regular file is an I/O error here; undecodable bytes
// are not an error at all (the normalizer drops them).
func readSignature(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	if !fileutil.FileExists(path) {
		return nil, fmt.Errorf("%w: %q", ErrSignatureMissing, path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrReadSignature, path, err)
	}
	return raw, nil
}

// resolveTimeout parses the timeout flag, defaulting to 30s.
func resolveTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 30 * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q (e.g., 30s, 2m)", ErrInvalidTimeout, s)
	}
	return d, nil
}

// writeOutput writes the PDF, creating parent directories as needed.
func writeOutput(path string, pdf []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrWritePDF, path, err)
		}
	}
	if err := os.WriteFile(path, pdf, filePermissions); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrWritePDF, path, err)
	}
	return nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// firstNonZero returns the first non-zero value.
func firstNonZero(values ...float64) float64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
