// Package analyzer scores a rendered document against the clause and
// terminology checklist of its subtype. It is a pure pipeline over the text:
// it never sees the original record and never panics — faults are folded
// into the report status.
package analyzer

import (
	"strings"

	"github.com/Contak-cpu/inmob-sub001/model"
)

// Point weights. Raw points are scaled to a 0-100 score against the
// checklist's maximum, so the 80-point approval threshold keeps its meaning
// across subtypes with different checklist sizes.
const (
	headerPoints   = 10
	partiesPoints  = 10
	recitalsPoints = 8
	markerPoints   = 7
	clausePoints   = 8
	termPoints     = 5
	fieldPoints    = 5

	approveThreshold      = 80
	structureThreshold    = 25
	completenessThreshold = 25
)

// checklist is what a well-formed document of a given subtype must contain.
type checklist struct {
	header  string
	clauses []string
	terms   []string
	fields  []string
}

var requiredClauses = []string{"OBJETO", "PLAZO", "PRECIO", "DEPÓSITO", "GARANTES", "GASTOS"}

var completenessFields = []string{"DNI", "precio mensual", "depósito", "domicilio", "matrícula", "FIRMAS"}

var checklists = map[string]checklist{
	"comercial": {
		header:  "CONTRATO DE LOCACIÓN COMERCIAL",
		clauses: requiredClauses,
		terms:   []string{"LOCADOR", "LOCATARIO", "comercial"},
		fields:  completenessFields,
	},
	"vivienda": {
		header:  "CONTRATO DE LOCACIÓN DE VIVIENDA",
		clauses: requiredClauses,
		terms:   []string{"LOCADOR", "LOCATARIO", "familiar"},
		fields:  completenessFields,
	},
	"empresarial": {
		header:  "CONTRATO DE LOCACIÓN EMPRESARIAL",
		clauses: requiredClauses,
		terms:   []string{"LOCADOR", "LOCATARIO", "empresarial"},
		fields:  completenessFields,
	},
}

// Analyze scores the rendered text against the subtype's checklist. An
// unsupported subtype or blank text yields an ERROR status report instead of
// an error value, so best-effort callers never have to handle a failure.
func Analyze(text, subtype string) model.QualityReport {
	report := model.QualityReport{
		Status:      model.AnalysisOK,
		Issues:      []string{},
		Suggestions: []string{},
		Verdict:     model.VerdictNeedsRevision,
	}

	list, ok := checklists[subtype]
	if !ok {
		report.Status = model.AnalysisError
		report.Issues = append(report.Issues, "Tipo de documento no soportado: "+subtype)
		return report
	}
	if strings.TrimSpace(text) == "" {
		report.Status = model.AnalysisError
		report.Issues = append(report.Issues, "El documento está vacío")
		return report
	}

	raw := 0
	maxRaw := 0

	// Structure: header, parties introduction, recitals, clause marker.
	structure := 0
	maxRaw += headerPoints + partiesPoints + recitalsPoints + markerPoints
	structure += award(text, list.header, headerPoints,
		"Falta el encabezado del documento", &report.Issues)
	structure += award(text, "en adelante el LOCADOR", partiesPoints,
		"No se identifican las partes del contrato", &report.Issues)
	structure += award(text, "ANTECEDENTES", recitalsPoints,
		"Falta la sección de antecedentes", &report.Issues)
	structure += award(text, "CLÁUSULAS", markerPoints,
		"Falta el cuerpo de cláusulas", &report.Issues)
	raw += structure

	// Required clause labels.
	for _, clause := range list.clauses {
		maxRaw += clausePoints
		raw += award(text, clause, clausePoints,
			"Falta la cláusula "+clause, &report.Issues)
	}

	// Legal terminology: missing terms are suggestions, not blockers.
	for _, term := range list.terms {
		maxRaw += termPoints
		raw += award(text, term, termPoints,
			"Se sugiere incluir el término "+term, &report.Suggestions)
	}

	// Field completeness.
	completeness := 0
	for _, field := range list.fields {
		maxRaw += fieldPoints
		completeness += award(text, field, fieldPoints,
			"No se encontró la referencia a "+field, &report.Issues)
	}
	raw += completeness

	report.Score = scale(raw, maxRaw)
	report.Compliance = model.Compliance{
		Legal:        report.Score >= approveThreshold,
		Structure:    structure >= structureThreshold,
		Completeness: completeness >= completenessThreshold,
	}
	if report.Score >= approveThreshold {
		report.Verdict = model.VerdictApproved
	}
	return report
}

// award returns the points when the needle is present in the text, otherwise
// appends the message to the given list and returns zero.
func award(text, needle string, points int, message string, missing *[]string) int {
	if strings.Contains(text, needle) {
		return points
	}
	*missing = append(*missing, message)
	return 0
}

// scale maps raw awarded points onto 0-100 against the checklist maximum.
func scale(raw, maxRaw int) int {
	if maxRaw <= 0 {
		return 0
	}
	score := raw * 100 / maxRaw
	if score > 100 {
		score = 100
	}
	return score
}
