// Package extract pulls plain lowercase text out of uploaded resume files.
package extract

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"ats/internal/domain"
)

const (
	MIMEPDF  = "application/pdf"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEText = "text/plain"
)

var extensionTypes = map[string]string{
	".pdf":  MIMEPDF,
	".docx": MIMEDOCX,
	".txt":  MIMEText,
	".md":   MIMEText,
}

// Extractor converts documents of any supported format to normalized text.
type Extractor struct {
	logger *zap.Logger
}

// New creates an Extractor.
func New(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// Extract returns the lowercased text of doc. The format comes from
// doc.MIME, then the file extension, then content sniffing.
func (e *Extractor) Extract(doc domain.Document) (string, error) {
	start := time.Now()
	mt := DetectType(doc)

	var (
		text string
		err  error
	)
	switch {
	case mt == MIMEPDF:
		text, err = PDF(doc.Data)
	case mt == MIMEDOCX:
		text, err = DOCX(doc.Data)
	case strings.HasPrefix(mt, "text/"):
		text = Text(doc.Data)
	default:
		return "", &domain.AnalysisError{Op: "extract", Err: domain.ErrUnsupportedFormat, Detail: mt}
	}
	if err != nil {
		return "", err
	}

	e.logger.Debug("document extracted",
		zap.String("name", doc.Name),
		zap.String("mime", mt),
		zap.Int("bytes", len(doc.Data)),
		zap.Int("chars", utf8.RuneCountInString(text)),
		zap.Duration("took", time.Since(start)),
	)
	return text, nil
}

// DetectType returns the bare media type of doc without parameters.
func DetectType(doc domain.Document) string {
	raw := doc.MIME
	if raw == "" {
		raw = extensionTypes[strings.ToLower(filepath.Ext(doc.Name))]
	}
	if raw == "" {
		raw = mimetype.Detect(doc.Data).String()
	}
	mt, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(raw))
	}
	return mt
}

// Text normalizes a plain text upload, replacing invalid UTF-8.
func Text(data []byte) string {
	return domain.Normalize(strings.ToValidUTF8(string(data), "�"))
}

func extractionError(format string, cause any) error {
	return domain.NewExtractionError(fmt.Sprintf("%s: %v", format, cause))
}
