package vollmacht

import (
	"context"
	"fmt"
	"time"
)

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithTimeout sets the PDF generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("vollmacht: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// Service orchestrates the form-to-PDF pipeline: signature normalization,
// layout building, HTML serialization, and browser printing. Each Generate
// call is an independent, stateless transformation; a Service is safe for
// concurrent use because every call prints on its own browser page.
type Service struct {
	cfg          serviceConfig
	pdfConverter pdfConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdfConverter == nil {
		s.pdfConverter = newRodConverter(s.cfg.timeout)
	}

	return s
}

// Generate runs the full pipeline and returns the PDF as bytes.
// The context is used for cancellation and timeout. Only rendering failures
// are returned as errors; an undecodable signature or missing field values
// degrade into a still-deliverable document.
func (s *Service) Generate(ctx context.Context, input Input) ([]byte, error) {
	opts := input.Options.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	table := input.I18n
	if table == nil {
		// German is both the default interface language and the language
		// of the legal boilerplate.
		if t, err := Language(DefaultLanguage); err == nil {
			table = t
		}
	}

	sig := NormalizeSignature(input.Signature, opts.SignatureWidth, opts.SignatureMaxHeight)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	blocks := BuildLayout(input.Data, sig, table, opts)

	htmlContent, err := renderDocumentHTML(blocks, table, opts)
	if err != nil {
		return nil, fmt.Errorf("serializing layout: %w", err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	pdf, err := s.pdfConverter.ToPDF(ctx, htmlContent, opts)
	if err != nil {
		return nil, fmt.Errorf("printing document: %w", err)
	}

	return pdf, nil
}

// Close releases browser resources. Call when done with the service.
func (s *Service) Close() error {
	if s.pdfConverter != nil {
		return s.pdfConverter.Close()
	}
	return nil
}
