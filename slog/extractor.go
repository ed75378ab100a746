package slog

import (
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/fwojciec/jobpage"
)

// Ensure LoggingExtractor implements jobpage.Extractor.
var _ jobpage.Extractor = (*LoggingExtractor)(nil)

// explainer is implemented by extractors that can name the matcher that
// resolved each field.
type explainer interface {
	Explain(html string) map[string]string
}

// LoggingExtractor wraps an Extractor and logs which fields were found.
// When the wrapped extractor can explain its matches, the matcher behind
// each resolved field is logged at debug level.
type LoggingExtractor struct {
	next   jobpage.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next jobpage.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the result.
func (e *LoggingExtractor) Extract(html string) *jobpage.RawFields {
	begin := time.Now()
	raw := e.next.Extract(html)
	e.logger.Info("extract",
		"bytes", len(html),
		"title", raw.Title != "",
		"description", raw.Description != "",
		"apply", raw.ApplyHref != "",
		"qualifications", len(raw.Qualifications),
		"benefits", len(raw.Benefits),
		"responsibilities", len(raw.Responsibilities),
		"empty", raw.IsEmpty(),
		"duration", time.Since(begin),
	)

	if ex, ok := e.next.(explainer); ok {
		names := ex.Explain(html)
		for _, field := range slices.Sorted(maps.Keys(names)) {
			e.logger.Debug("match", "field", field, "matcher", names[field])
		}
	}
	return raw
}
