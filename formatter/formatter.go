// Package formatter holds the presentation helpers shared by the document
// templates: peso amounts, Spanish dates, amounts in words and receipt
// line-item naming.
package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"
)

// Currency renders an amount with Argentine peso conventions: thousands
// separated by dots, comma decimal separator, two decimals. Non-finite
// amounts render as zero rather than corrupting the document text.
func Currency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	sign := ""
	if amount < 0 {
		sign = "-"
	}

	cents := int64(math.Round(math.Abs(amount) * 100))
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}

	return fmt.Sprintf("%s$%s,%02d", sign, b.String(), frac)
}

var weekdays = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

var months = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// LongDate renders the long-form Spanish date used in document bodies,
// e.g. "lunes, 2 de enero de 2006".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d",
		weekdays[int(t.Weekday())], t.Day(), months[int(t.Month())-1], t.Year())
}

// ShortDate renders DD/MM/YYYY.
func ShortDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// itemRule maps a lowercase keyword to its canonical line-item label. Rules
// are evaluated in order and the first keyword contained in the description
// wins, so broader keywords must come after the specific ones.
type itemRule struct {
	keyword string
	label   string
}

var itemRules = []itemRule{
	{"expensas", "Expensas"},
	{"consorcio", "Expensas"},
	{"alquiler", "Alquiler"},
	{"renta", "Alquiler"},
	{"plomer", "Reparación de plomería"},
	{"cañer", "Reparación de plomería"},
	{"caño", "Reparación de plomería"},
	{"eléctric", "Reparación eléctrica"},
	{"electric", "Reparación eléctrica"},
	{"cableado", "Reparación eléctrica"},
	{"luz", "Reparación eléctrica"},
	{"pintur", "Pintura"},
	{"techo", "Reparación de techo"},
	{"goter", "Reparación de techo"},
	{"limpieza", "Limpieza"},
	{"jardín", "Jardinería"},
	{"jardin", "Jardinería"},
	{"poda", "Jardinería"},
	{"administra", "Administración"},
	{"honorario", "Administración"},
}

// Fallback labels per receipt kind when the description is blank.
var kindFallbacks = map[string]string{
	"rent":    "Alquiler",
	"repair":  "Reparación",
	"service": "Servicio",
}

// ItemName classifies a free-text line-item description into a canonical
// display label by keyword containment, case-insensitive. Unmatched
// descriptions are capitalized as-is; blank descriptions fall back to a
// label derived from the receipt kind.
func ItemName(description, kind string) string {
	desc := strings.TrimSpace(description)
	if desc == "" {
		if label, ok := kindFallbacks[kind]; ok {
			return label
		}
		return "Concepto"
	}

	lower := strings.ToLower(desc)
	for _, rule := range itemRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.label
		}
	}

	runes := []rune(desc)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
