package template

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Contak-cpu/inmob-sub001/model"
)

var testNow = time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

func contractRecord() model.Record {
	return model.Record{
		"propertyAddress":  "Av. San Martín 100",
		"propertyType":     "local",
		"propertySurface":  "80",
		"propertyRooms":    "3",
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
		"petsAllowed":      "no permitida",
		"observations":     "sin observaciones",
		"realtyName":       "Inmobiliaria Central",
		"realtyLicense":    "CUCICBA 1234",
		"realtyAddress":    "Av. Rivadavia 5500",
	}
}

func TestContractCommercial(t *testing.T) {
	text, err := Contract(contractRecord(), "comercial", testNow)
	require.NoError(t, err)

	// clause labels
	for _, label := range []string{"OBJETO", "PLAZO", "PRECIO", "DEPÓSITO", "GASTOS", "MASCOTAS", "OBSERVACIONES"} {
		assert.Contains(t, text, label)
	}

	assert.Contains(t, text, "CONTRATO DE LOCACIÓN COMERCIAL")
	assert.Contains(t, text, "uso comercial")
	assert.Contains(t, text, "martes, 10 de marzo de 2026")
	assert.Contains(t, text, "miércoles, 1 de abril de 2026")
	assert.Contains(t, text, "$150.000,00")
	assert.Contains(t, text, "CIENTO CINCUENTA MIL")
	assert.Contains(t, text, "Juan Pérez")
	assert.Contains(t, text, "Ana Gómez")
	assert.Contains(t, text, "IPC")
	assert.Contains(t, text, "FIRMAS")
	assert.Contains(t, text, "CUCICBA 1234")
}

func TestContractVariants(t *testing.T) {
	tests := []struct {
		subtype string
		header  string
		use     string
	}{
		{"comercial", "CONTRATO DE LOCACIÓN COMERCIAL", "uso comercial"},
		{"vivienda", "CONTRATO DE LOCACIÓN DE VIVIENDA", "uso familiar"},
		{"empresarial", "CONTRATO DE LOCACIÓN EMPRESARIAL", "uso empresarial"},
	}

	for _, tt := range tests {
		t.Run(tt.subtype, func(t *testing.T) {
			text, err := Contract(contractRecord(), tt.subtype, testNow)
			require.NoError(t, err)
			assert.Contains(t, text, tt.header)
			assert.Contains(t, text, tt.use)
		})
	}
}

func TestContractUnknownSubtype(t *testing.T) {
	_, err := Contract(contractRecord(), "temporario", testNow)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownSubtype)
}

func TestContractWithoutGuarantors(t *testing.T) {
	text, err := Contract(contractRecord(), "comercial", testNow)
	require.NoError(t, err)

	assert.NotContains(t, text, "GARANTES")
	assert.NotContains(t, text, "GARANTE 1")
	// clause numbering has no gap: GASTOS takes the fifth position
	assert.Contains(t, text, "QUINTA - GASTOS")
}

func TestContractWithOneGuarantor(t *testing.T) {
	rec := contractRecord()
	rec["guarantor1Name"] = "Carlos López"
	rec["guarantor1Dni"] = "25111333"
	rec["guarantor1Address"] = "Alsina 400"

	text, err := Contract(rec, "comercial", testNow)
	require.NoError(t, err)

	assert.Contains(t, text, "QUINTA - GARANTES")
	assert.Contains(t, text, "SEXTA - GASTOS")
	assert.Contains(t, text, "Carlos López")
	assert.Contains(t, text, "GARANTE 1")
	assert.NotContains(t, text, "GARANTE 2")
}

func TestContractWithTwoGuarantors(t *testing.T) {
	rec := contractRecord()
	rec["guarantor1Name"] = "Carlos López"
	rec["guarantor1Dni"] = "25111333"
	rec["guarantor2Name"] = "Lucía Ferreyra"
	rec["guarantor2Dni"] = "27444555"

	text, err := Contract(rec, "comercial", testNow)
	require.NoError(t, err)

	assert.Contains(t, text, "GARANTE 1")
	assert.Contains(t, text, "GARANTE 2")
	assert.Contains(t, text, "Lucía Ferreyra")
}

func TestContractMissingOptionalsRenderPlaceholder(t *testing.T) {
	rec := model.Record{
		"ownerName":    "Juan Pérez",
		"ownerDni":     "30111222",
		"tenantName":   "Ana Gómez",
		"tenantDni":    "28222333",
		"monthlyPrice": "150000",
	}

	text, err := Contract(rec, "vivienda", testNow)
	require.NoError(t, err)

	// every clause exists even when its value is unresolved
	assert.Contains(t, text, "a convenir")
	assert.Contains(t, text, "DEPÓSITO")
	assert.Contains(t, text, "GASTOS")
	assert.Contains(t, text, "OBSERVACIONES")
}

func TestAmountInWords(t *testing.T) {
	assert.Equal(t, "CIENTO CINCUENTA MIL", amountInWords(150000))
	assert.Equal(t, "MIL QUINIENTOS CON 50/100", amountInWords(1500.50))
	assert.Equal(t, "CERO", amountInWords(0))
	assert.Equal(t, "CERO", amountInWords(-10))
}
