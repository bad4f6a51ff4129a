// Package validator implements the field-level and record-level rules applied
// to contract and receipt forms before rendering. Validation failures are
// data (report maps), never errors: callers decide whether to block.
package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Contak-cpu/inmob-sub001/model"
)

// SubtypeSale marks an outright sale, which has no deposit concept.
const SubtypeSale = "venta"

// AdjustmentTypes enumerates the accepted periodic price-adjustment indexes.
var AdjustmentTypes = []string{"IPC", "ICL", "UVA", "FIJO"}

var (
	nameRe   = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñÜü ]+$`)
	digitsRe = regexp.MustCompile(`^[0-9]+$`)
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe  = regexp.MustCompile(`^[0-9+\-() ]+$`)
	cuitRe   = regexp.MustCompile(`^[0-9]{2}-[0-9]{8}-[0-9]$`)
)

// dateDirection controls which side of "now" a date field may fall on. The
// original rule rejected past dates everywhere; here the direction is
// configurable per field so past-dated receipts stay expressible.
type dateDirection int

const (
	dateAny dateDirection = iota
	dateForward
	dateBackward
)

var dateDirections = map[string]dateDirection{
	"startDate":   dateForward,
	"issueDate":   dateAny,
	"paymentDate": dateAny,
}

// fieldRule validates one canonical field category.
type fieldRule func(name, value, subtype string, now time.Time) string

// dispatchEntry pairs a field-name predicate with its rule. Entries are
// evaluated top to bottom and the first matching predicate wins, so the
// specific categories must precede the broad ones.
type dispatchEntry struct {
	matches func(name string) bool
	rule    fieldRule
}

var dispatchTable = []dispatchEntry{
	{nameContains("cuit"), checkCUIT},
	{nameContains("dni"), checkDNI},
	{nameContains("email"), checkEmail},
	{nameContains("phone", "telefono"), checkPhone},
	{nameContains("date", "fecha"), checkDate},
	{nameContains("price", "amount", "deposit", "rent", "importe"), checkAmount},
	{nameContains("name", "nombre"), checkName},
	{nameContains("address", "direccion"), checkAddress},
}

func nameContains(keywords ...string) func(string) bool {
	return func(name string) bool {
		lower := strings.ToLower(name)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
		return false
	}
}

// Field validates a single field value against the rule for its canonical
// category, using the wall clock for date rules. An empty result means the
// value is valid.
func Field(name, value, subtype string) string {
	return FieldAt(name, value, subtype, time.Now())
}

// FieldAt is Field with an explicit "as of" instant for date rules.
func FieldAt(name, value, subtype string, now time.Time) string {
	if depositExempt(name, subtype) {
		return ""
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "Este campo es obligatorio"
	}

	for _, entry := range dispatchTable {
		if entry.matches(name) {
			return entry.rule(name, trimmed, subtype, now)
		}
	}
	return ""
}

// depositExempt reports whether the field is a deposit amount on an outright
// sale, where no deposit exists and the field must not be demanded.
func depositExempt(name, subtype string) bool {
	return subtype == SubtypeSale && strings.Contains(strings.ToLower(name), "deposit")
}

func checkName(_, value, _ string, _ time.Time) string {
	if len([]rune(value)) < 2 || !nameRe.MatchString(value) {
		return "Debe contener solo letras y espacios, mínimo 2 caracteres"
	}
	return ""
}

func checkDNI(_, value, _ string, _ time.Time) string {
	digits := strings.ReplaceAll(value, ".", "")
	if !digitsRe.MatchString(digits) || len(digits) < 7 || len(digits) > 8 {
		return "El DNI debe tener 7 u 8 dígitos"
	}
	return ""
}

func checkEmail(_, value, _ string, _ time.Time) string {
	if !emailRe.MatchString(value) {
		return "Formato de email inválido"
	}
	return ""
}

func checkPhone(_, value, _ string, _ time.Time) string {
	if !phoneRe.MatchString(value) {
		return "El teléfono solo admite dígitos, espacios, +, - y paréntesis"
	}
	return ""
}

func checkCUIT(_, value, _ string, _ time.Time) string {
	if !cuitRe.MatchString(value) {
		return "El CUIT debe tener el formato XX-XXXXXXXX-X"
	}
	return ""
}

func checkAmount(_, value, _ string, _ time.Time) string {
	amount, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
	if err != nil || amount <= 0 {
		return "Debe ser un importe mayor a cero"
	}
	return ""
}

func checkAddress(_, value, _ string, _ time.Time) string {
	if len([]rune(value)) < 5 {
		return "La dirección debe tener al menos 5 caracteres"
	}
	return ""
}

func checkDate(name, value, _ string, now time.Time) string {
	parsed, err := parseDate(value)
	if err != nil {
		return "Fecha inválida, use AAAA-MM-DD o DD/MM/AAAA"
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch dateDirections[name] {
	case dateForward:
		if parsed.Before(today) {
			return "La fecha no puede ser anterior a hoy"
		}
	case dateBackward:
		if parsed.After(today) {
			return "La fecha no puede ser posterior a hoy"
		}
	}
	return ""
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse("02/01/2006", value)
}

// Form runs the generic field validator over every key present in the record
// and collects the non-empty errors into a fresh report.
func Form(rec model.Record, subtype string) model.ValidationReport {
	return FormAt(rec, subtype, time.Now())
}

// FormAt is Form with an explicit "as of" instant.
func FormAt(rec model.Record, subtype string, now time.Time) model.ValidationReport {
	report := model.ValidationReport{}
	for name, value := range rec {
		if msg := FieldAt(name, value, subtype, now); msg != "" {
			report[name] = msg
		}
	}
	return report
}

// FieldStatus derives the three-state display status for a field: error when
// it has a validation message and was interacted with, success when it was
// interacted with, is non-empty and valid, default otherwise.
func FieldStatus(name, value string, touched bool, subtype string) string {
	if !touched {
		return model.FieldStatusDefault
	}
	if Field(name, value, subtype) != "" {
		return model.FieldStatusError
	}
	if strings.TrimSpace(value) == "" {
		return model.FieldStatusDefault
	}
	return model.FieldStatusSuccess
}
