package domain

import "context"

// Document is an uploaded resume file as raw bytes.
// MIME may be empty, in which case the extractor sniffs the content.
type Document struct {
	Name string
	MIME string
	Data []byte
}

// Analyzer defines the operations exposed by the application core.
type Analyzer interface {
	AnalyzeText(ctx context.Context, resumeText, jdText string) (*ScoreBreakdown, error)
	AnalyzeDocument(ctx context.Context, doc Document, jdText string) (*ScoreBreakdown, error)
}
