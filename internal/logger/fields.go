package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	FieldAnalysisID = "analysis_id"
	FieldStrategy   = "strategy"
	FieldPreset     = "preset"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts key/value pairs into zap fields, trimming whitespace
// and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches fields to logger, falling back to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// AnalysisFields describes one scoring request.
func AnalysisFields(id, strategy, preset string) []zap.Field {
	return StringFields(
		StringField{Key: FieldAnalysisID, Value: id},
		StringField{Key: FieldStrategy, Value: strategy},
		StringField{Key: FieldPreset, Value: preset},
	)
}

// WithAnalysis returns a child logger tagged with the analysis fields.
func WithAnalysis(logger *zap.Logger, id, strategy, preset string) *zap.Logger {
	return WithFields(logger, AnalysisFields(id, strategy, preset)...)
}
