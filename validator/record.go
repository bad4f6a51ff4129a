package validator

import (
	"strconv"

	"github.com/Contak-cpu/inmob-sub001/model"
)

// Required-field checks per record shape. These are independent of the
// generic field dispatcher: they assert that the record carries everything a
// renderable document needs, with typed checks for the economic terms.

// propertyType is deliberately absent: rendering falls back to "a convenir"
// for it, so a record without one still yields a complete document.
var contractRequired = map[string]string{
	"propertyAddress": "Falta la dirección de la propiedad",
	"ownerName":       "Falta el nombre del propietario",
	"ownerDni":        "Falta el DNI del propietario",
	"tenantName":      "Falta el nombre del inquilino",
	"tenantDni":       "Falta el DNI del inquilino",
	"startDate":       "Falta la fecha de inicio",
	"adjustmentType":  "Falta el tipo de ajuste",
}

var receiptRequired = map[string]string{
	"propertyAddress": "Falta la dirección de la propiedad",
	"propertyType":    "Falta el tipo de propiedad",
	"tenantName":      "Falta el nombre del inquilino",
	"tenantDni":       "Falta el DNI del inquilino",
	"period":          "Falta el período del recibo",
	"issueDate":       "Falta la fecha de emisión",
}

// ContractData checks that a contract record carries every field rendering
// needs. Pure: the record is never mutated and the same input always yields
// the same report.
func ContractData(rec model.Record) model.ValidationReport {
	report := model.ValidationReport{}

	for field, msg := range contractRequired {
		if !rec.Has(field) {
			report[field] = msg
		}
	}

	requirePositiveNumber(rec, "monthlyPrice", "El precio mensual debe ser un número mayor a cero", report)
	requirePositiveNumber(rec, "duration", "La duración en meses debe ser un número mayor a cero", report)
	requirePositiveNumber(rec, "deposit", "El depósito debe ser un número mayor a cero", report)

	if adj := rec.Get("adjustmentType"); adj != "" && !validAdjustment(adj) {
		report["adjustmentType"] = "Tipo de ajuste inválido"
	}

	return report
}

// ReceiptData checks that a receipt record carries every field rendering
// needs. Pure, like ContractData.
func ReceiptData(rec model.Record) model.ValidationReport {
	report := model.ValidationReport{}

	for field, msg := range receiptRequired {
		if !rec.Has(field) {
			report[field] = msg
		}
	}

	requirePositiveNumber(rec, "baseRent", "El alquiler base debe ser un número mayor a cero", report)

	return report
}

func requirePositiveNumber(rec model.Record, field, msg string, report model.ValidationReport) {
	value := rec.Get(field)
	if value == "" {
		report[field] = msg
		return
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || n <= 0 {
		report[field] = msg
	}
}

func validAdjustment(adj string) bool {
	for _, t := range AdjustmentTypes {
		if t == adj {
			return true
		}
	}
	return false
}
