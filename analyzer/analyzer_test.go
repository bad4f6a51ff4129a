package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Contak-cpu/inmob-sub001/model"
	"github.com/Contak-cpu/inmob-sub001/template"
)

func renderedContract(t *testing.T, subtype string, extra model.Record) string {
	t.Helper()

	rec := model.Record{
		"propertyAddress":  "Av. San Martín 100",
		"propertyType":     "local",
		"ownerName":        "Juan Pérez",
		"ownerDni":         "30111222",
		"ownerAddress":     "Belgrano 200",
		"tenantName":       "Ana Gómez",
		"tenantDni":        "28222333",
		"tenantAddress":    "Mitre 300",
		"startDate":        "2026-04-01",
		"duration":         "24",
		"monthlyPrice":     "150000",
		"deposit":          "1",
		"adjustmentType":   "IPC",
		"expensesIncluded": "expensas ordinarias",
		"realtyName":       "Inmobiliaria Central",
		"realtyLicense":    "CUCICBA 1234",
		"realtyAddress":    "Av. Rivadavia 5500",
	}
	for k, v := range extra {
		rec[k] = v
	}

	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)
	text, err := template.Contract(rec, subtype, now)
	require.NoError(t, err)
	return text
}

func TestAnalyzeCompleteContract(t *testing.T) {
	text := renderedContract(t, "comercial", model.Record{
		"guarantor1Name":    "Carlos López",
		"guarantor1Dni":     "25111333",
		"guarantor1Address": "Alsina 400",
	})

	report := Analyze(text, "comercial")

	assert.Equal(t, model.AnalysisOK, report.Status)
	assert.GreaterOrEqual(t, report.Score, 80)
	assert.Equal(t, model.VerdictApproved, report.Verdict)
	assert.Empty(t, report.Issues)
	assert.Empty(t, report.Suggestions)
	assert.True(t, report.Compliance.Legal)
	assert.True(t, report.Compliance.Structure)
	assert.True(t, report.Compliance.Completeness)
}

func TestAnalyzeContractWithoutGuarantorsStillApproved(t *testing.T) {
	text := renderedContract(t, "vivienda", nil)

	report := Analyze(text, "vivienda")

	assert.Equal(t, model.AnalysisOK, report.Status)
	assert.GreaterOrEqual(t, report.Score, 80)
	assert.Equal(t, model.VerdictApproved, report.Verdict)
	// the missing GARANTES clause is reported, but does not block approval
	assert.Contains(t, report.Issues, "Falta la cláusula GARANTES")
}

func TestAnalyzeGuttedDocument(t *testing.T) {
	text := "CONTRATO DE LOCACIÓN COMERCIAL\n\nPRIMERA - OBJETO: algo.\n"

	report := Analyze(text, "comercial")

	assert.Equal(t, model.AnalysisOK, report.Status)
	assert.Less(t, report.Score, 80)
	assert.Equal(t, model.VerdictNeedsRevision, report.Verdict)
	assert.NotEmpty(t, report.Issues)
	assert.False(t, report.Compliance.Legal)
	assert.False(t, report.Compliance.Completeness)
}

func TestAnalyzeMissingTermsAreSuggestions(t *testing.T) {
	// structurally fine but uses no standard legal terminology
	text := renderedContract(t, "comercial", nil)
	report := Analyze(text, "empresarial")

	// the commercial permitted-use label does not match the corporate checklist
	assert.Contains(t, report.Suggestions, "Se sugiere incluir el término empresarial")
}

func TestAnalyzeUnsupportedSubtype(t *testing.T) {
	report := Analyze("texto cualquiera", "temporario")

	assert.Equal(t, model.AnalysisError, report.Status)
	assert.Equal(t, 0, report.Score)
	assert.Equal(t, model.VerdictNeedsRevision, report.Verdict)
	assert.NotEmpty(t, report.Issues)
}

func TestAnalyzeEmptyText(t *testing.T) {
	report := Analyze("   \n", "comercial")

	assert.Equal(t, model.AnalysisError, report.Status)
	assert.Equal(t, 0, report.Score)
	assert.NotEmpty(t, report.Issues)
}

func TestScale(t *testing.T) {
	assert.Equal(t, 100, scale(128, 128))
	assert.Equal(t, 93, scale(120, 128))
	assert.Equal(t, 0, scale(0, 128))
	assert.Equal(t, 0, scale(10, 0))
}
