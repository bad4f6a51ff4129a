package formatter

import "strconv"

// Spanish cardinal tables. These are written out explicitly because a missing
// irregular case silently corrupts the amount-in-words line of a legal
// document.
var wordUnits = [...]string{
	"", "UNO", "DOS", "TRES", "CUATRO", "CINCO", "SEIS", "SIETE", "OCHO", "NUEVE",
}

var wordTeens = [...]string{
	"DIEZ", "ONCE", "DOCE", "TRECE", "CATORCE", "QUINCE",
	"DIECISÉIS", "DIECISIETE", "DIECIOCHO", "DIECINUEVE",
}

var wordTens = [...]string{
	"", "DIEZ", "VEINTE", "TREINTA", "CUARENTA", "CINCUENTA",
	"SESENTA", "SETENTA", "OCHENTA", "NOVENTA",
}

var wordHundreds = [...]string{
	"", "CIENTO", "DOSCIENTOS", "TRESCIENTOS", "CUATROCIENTOS", "QUINIENTOS",
	"SEISCIENTOS", "SETECIENTOS", "OCHOCIENTOS", "NOVECIENTOS",
}

const wordsMax = 999_999_999

// NumberToWords spells an integer amount in upper-case Spanish for the
// amount-in-words clause of contracts and receipts. Supported range is 0 to
// 999.999.999; anything outside it is returned as plain digits so the
// document still renders.
func NumberToWords(n int64) string {
	if n < 0 || n > wordsMax {
		return strconv.FormatInt(n, 10)
	}
	if n == 0 {
		return "CERO"
	}
	return spell(n)
}

func spell(n int64) string {
	switch {
	case n >= 1_000_000:
		head := "UN MILLÓN"
		if m := n / 1_000_000; m > 1 {
			head = spell(m) + " MILLONES"
		}
		if rest := n % 1_000_000; rest > 0 {
			return head + " " + spell(rest)
		}
		return head

	case n >= 1000:
		head := "MIL"
		if q := n / 1000; q > 1 {
			head = spell(q) + " MIL"
		}
		if rest := n % 1000; rest > 0 {
			return head + " " + spell(rest)
		}
		return head

	case n == 100:
		return "CIEN"

	case n >= 100:
		head := wordHundreds[n/100]
		if rest := n % 100; rest > 0 {
			return head + " " + spell(rest)
		}
		return head

	case n >= 20:
		head := wordTens[n/10]
		if rest := n % 10; rest > 0 {
			return head + " Y " + wordUnits[rest]
		}
		return head

	case n >= 10:
		return wordTeens[n-10]

	default:
		return wordUnits[n]
	}
}
