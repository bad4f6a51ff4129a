// Package template renders validated records into the final document text.
// Rendering never validates and never fails on missing optional data: absent
// values render as an explicit "a convenir" placeholder so every clause
// exists even when its value is unresolved.
package template

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Contak-cpu/inmob-sub001/formatter"
	"github.com/Contak-cpu/inmob-sub001/model"
)

// ErrUnknownSubtype is returned when no clause set exists for the requested
// subtype. There is no safe default: rendering must fail rather than emit
// malformed legal text.
var ErrUnknownSubtype = errors.New("tipo de documento no soportado")

// Placeholder rendered for unresolved optional values.
const toBeAgreed = "a convenir"

// Variant parameterizes the shared contract skeleton per subtype: the header
// title and the legal label for the permitted use of the property.
type Variant struct {
	HeaderTitle  string
	PermittedUse string
}

// Variants enumerates the supported contract subtypes.
var Variants = map[string]Variant{
	"comercial":   {HeaderTitle: "CONTRATO DE LOCACIÓN COMERCIAL", PermittedUse: "comercial"},
	"vivienda":    {HeaderTitle: "CONTRATO DE LOCACIÓN DE VIVIENDA", PermittedUse: "familiar"},
	"empresarial": {HeaderTitle: "CONTRATO DE LOCACIÓN EMPRESARIAL", PermittedUse: "empresarial"},
}

var ordinals = [...]string{
	"PRIMERA", "SEGUNDA", "TERCERA", "CUARTA", "QUINTA",
	"SEXTA", "SÉPTIMA", "OCTAVA", "NOVENA", "DÉCIMA",
}

// clauseWriter numbers clauses as they are appended, so conditional clauses
// (guarantors) never leave gaps in the ordinal sequence.
type clauseWriter struct {
	b     strings.Builder
	count int
}

func (w *clauseWriter) clause(label, body string) {
	ordinal := fmt.Sprintf("CLÁUSULA %d", w.count+1)
	if w.count < len(ordinals) {
		ordinal = ordinals[w.count]
	}
	w.count++
	fmt.Fprintf(&w.b, "%s - %s: %s\n\n", ordinal, label, body)
}

// Contract renders a lease contract for the given subtype as of the given
// instant. The record is assumed to be already validated; any field still
// found empty renders as "a convenir".
func Contract(rec model.Record, subtype string, now time.Time) (string, error) {
	variant, ok := Variants[subtype]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSubtype, subtype)
	}

	monthly := parseAmount(rec.Get("monthlyPrice"))

	var w clauseWriter
	fmt.Fprintf(&w.b, "%s\n\n", variant.HeaderTitle)

	fmt.Fprintf(&w.b,
		"En la fecha %s, entre %s, DNI %s, con domicilio en %s, en adelante el LOCADOR, "+
			"y %s, DNI %s, con domicilio en %s, en adelante el LOCATARIO, "+
			"se conviene celebrar el presente contrato de locación.\n\n",
		formatter.LongDate(now),
		orAgreed(rec, "ownerName"), orAgreed(rec, "ownerDni"), orAgreed(rec, "ownerAddress"),
		orAgreed(rec, "tenantName"), orAgreed(rec, "tenantDni"), orAgreed(rec, "tenantAddress"))

	fmt.Fprintf(&w.b,
		"ANTECEDENTES: El LOCADOR declara ser titular del inmueble ubicado en %s, "+
			"tipo %s, de %s m² y %s ambientes, y manifiesta su voluntad de darlo en locación.\n\n",
		orAgreed(rec, "propertyAddress"), orAgreed(rec, "propertyType"),
		orAgreed(rec, "propertySurface"), orAgreed(rec, "propertyRooms"))

	w.b.WriteString("CLÁUSULAS\n\n")

	w.clause("OBJETO", fmt.Sprintf(
		"El LOCADOR cede en locación al LOCATARIO el inmueble descripto, que será destinado "+
			"exclusivamente a uso %s, no pudiendo el LOCATARIO alterar dicho destino sin "+
			"consentimiento escrito del LOCADOR.", variant.PermittedUse))

	w.clause("PLAZO", fmt.Sprintf(
		"El plazo de la locación se fija en %s meses, contados a partir del %s.",
		orAgreed(rec, "duration"), displayDate(rec.Get("startDate"))))

	w.clause("PRECIO", fmt.Sprintf(
		"El precio mensual de la locación se fija en %s (PESOS %s), pagadero del uno al diez "+
			"de cada mes. El precio se actualizará según el índice %s.",
		formatter.Currency(monthly), amountInWords(monthly), orAgreed(rec, "adjustmentType")))

	w.clause("DEPÓSITO", fmt.Sprintf(
		"En garantía del cumplimiento de sus obligaciones, el LOCATARIO entrega en este acto "+
			"un depósito equivalente a %s mes(es) de alquiler, que será restituido a la "+
			"finalización del contrato de no mediar deudas ni daños.",
		orAgreed(rec, "deposit")))

	writeGuarantorClause(&w, rec)

	w.clause("GASTOS", fmt.Sprintf(
		"Expensas y servicios incluidos en el precio: %s. Los restantes gastos del inmueble "+
			"quedan a cargo del LOCATARIO.", orAgreed(rec, "expensesIncluded")))

	w.clause("MASCOTAS", fmt.Sprintf(
		"Tenencia de mascotas en el inmueble: %s.", orAgreed(rec, "petsAllowed")))

	w.clause("OBSERVACIONES", orAgreed(rec, "observations")+".")

	fmt.Fprintf(&w.b,
		"Intervino en la presente operación %s, matrícula %s, con domicilio en %s.\n\n",
		orAgreed(rec, "realtyName"), orAgreed(rec, "realtyLicense"), orAgreed(rec, "realtyAddress"))

	writeSignatures(&w.b, rec)

	return w.b.String(), nil
}

// writeGuarantorClause emits the GARANTES clause only when at least one
// guarantor name is present; zero, one or two blocks may appear.
func writeGuarantorClause(w *clauseWriter, rec model.Record) {
	guarantors := presentGuarantors(rec)
	if len(guarantors) == 0 {
		return
	}

	var lines []string
	for _, g := range guarantors {
		lines = append(lines, fmt.Sprintf(
			"%s, DNI %s, con domicilio en %s, se constituye en garante liso, llano y "+
				"principal pagador de todas las obligaciones del LOCATARIO.",
			orAgreedValue(rec.Get(g+"Name")), orAgreedValue(rec.Get(g+"Dni")),
			orAgreedValue(rec.Get(g+"Address"))))
	}
	w.clause("GARANTES", strings.Join(lines, " "))
}

// writeSignatures mirrors the guarantor clauses: a GARANTE block appears for
// each guarantor emitted above.
func writeSignatures(b *strings.Builder, rec model.Record) {
	b.WriteString("FIRMAS\n\n")

	fmt.Fprintf(b, "_________________________\nLOCADOR\n%s\nDNI %s\n\n",
		orAgreed(rec, "ownerName"), orAgreed(rec, "ownerDni"))
	fmt.Fprintf(b, "_________________________\nLOCATARIO\n%s\nDNI %s\n",
		orAgreed(rec, "tenantName"), orAgreed(rec, "tenantDni"))

	for i, g := range presentGuarantors(rec) {
		fmt.Fprintf(b, "\n_________________________\nGARANTE %d\n%s\nDNI %s\n",
			i+1, rec.Get(g+"Name"), orAgreedValue(rec.Get(g+"Dni")))
	}
}

func presentGuarantors(rec model.Record) []string {
	var present []string
	for _, g := range []string{"guarantor1", "guarantor2"} {
		if rec.Has(g + "Name") {
			present = append(present, g)
		}
	}
	return present
}

func orAgreed(rec model.Record, field string) string {
	return orAgreedValue(rec.Get(field))
}

func orAgreedValue(value string) string {
	if value == "" {
		return toBeAgreed
	}
	return value
}

// displayDate renders an ISO or DD/MM/YYYY record date in the long Spanish
// form used throughout the document body; unparseable values pass through.
func displayDate(value string) string {
	if value == "" {
		return toBeAgreed
	}
	for _, layout := range []string{"2006-01-02", "02/01/2006"} {
		if t, err := time.Parse(layout, value); err == nil {
			return formatter.LongDate(t)
		}
	}
	return value
}

func parseAmount(value string) float64 {
	n, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
	if err != nil {
		return 0
	}
	return n
}

// amountInWords spells the whole part of an amount, appending the cents as a
// CON NN/100 fraction when present.
func amountInWords(amount float64) string {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	cents := int64(math.Round(amount * 100))
	words := formatter.NumberToWords(cents / 100)
	if frac := cents % 100; frac > 0 {
		return fmt.Sprintf("%s CON %02d/100", words, frac)
	}
	return words
}
