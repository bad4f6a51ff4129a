package model

import (
	"time"
)

// Document is a generated contract or receipt kept in the store. The text is
// immutable once rendered; downstream layers decide how to display or export
// it.
type Document struct {
	ID         string         `json:"id"`
	Kind       string         `json:"kind"` // contract, receipt
	Subtype    string         `json:"subtype"`
	Office     string         `json:"office"`
	Title      string         `json:"title"`
	Text       string         `json:"text,omitempty"`
	Quality    *QualityReport `json:"quality,omitempty"`
	ArchiveKey string         `json:"archive_key,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// Document kinds
const (
	KindContract = "contract"
	KindReceipt  = "receipt"
)

// Analyzer result statuses
const (
	AnalysisOK    = "OK"
	AnalysisError = "ERROR"
)

// Analyzer verdicts
const (
	VerdictApproved      = "APPROVED"
	VerdictNeedsRevision = "NEEDS_REVISION"
)

// Compliance summarizes which quality dimensions passed.
type Compliance struct {
	Legal        bool `json:"legal"`
	Structure    bool `json:"structure"`
	Completeness bool `json:"completeness"`
}

// QualityReport is the analyzer's result for one rendered document: a 0-100
// score, blocking issues, non-blocking suggestions and the derived verdict.
type QualityReport struct {
	Status      string     `json:"status"`
	Score       int        `json:"score"`
	Issues      []string   `json:"issues"`
	Suggestions []string   `json:"suggestions"`
	Compliance  Compliance `json:"compliance"`
	Verdict     string     `json:"verdict"`
}
