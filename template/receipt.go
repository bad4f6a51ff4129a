package template

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Contak-cpu/inmob-sub001/formatter"
	"github.com/Contak-cpu/inmob-sub001/model"
)

// Receipt kinds.
const (
	ReceiptRent    = "rent"
	ReceiptRepair  = "repair"
	ReceiptService = "service"
)

// receiptNumber composes a human-readable reference from the issue date and
// a zero-padded random suffix. Collisions are not checked: the number is a
// reference for people, not a primary key.
func receiptNumber(now time.Time) string {
	return now.Format("20060102") + fmt.Sprintf("%03d", rand.Intn(1000))
}

// RentReceipt renders a monthly rent receipt: period, base rent plus the
// included-expenses breakdown, and the total in figures and words.
func RentReceipt(rec model.Record, items []model.LineItem, now time.Time) string {
	var b strings.Builder
	writeReceiptHeader(&b, "RECIBO DE ALQUILER", rec, now)

	fmt.Fprintf(&b, "Período: %s\n\nDETALLE\n", orAgreed(rec, "period"))

	total := parseAmount(rec.Get("baseRent"))
	fmt.Fprintf(&b, "- Alquiler %s: %s\n", orAgreed(rec, "period"), formatter.Currency(total))
	for _, item := range items {
		total += item.Amount
		fmt.Fprintf(&b, "- %s: %s\n", itemLabel(item, ReceiptRent), formatter.Currency(item.Amount))
	}

	writeReceiptTotal(&b, total)
	fmt.Fprintf(&b, "Forma de pago: %s\n", orAgreed(rec, "paymentMethod"))
	writeReceiptFooter(&b, rec)
	return b.String()
}

// RepairReceipt renders a repair receipt with the materials/labour breakdown
// and the warranty period in days.
func RepairReceipt(rec model.Record, items []model.LineItem, now time.Time) string {
	var b strings.Builder
	writeReceiptHeader(&b, "RECIBO DE REPARACIÓN", rec, now)

	fmt.Fprintf(&b, "Trabajo realizado: %s\n\nDETALLE\n", orAgreed(rec, "repairDescription"))

	materials := parseAmount(rec.Get("materialsCost"))
	labour := parseAmount(rec.Get("laborCost"))
	fmt.Fprintf(&b, "- Materiales: %s\n", formatter.Currency(materials))
	fmt.Fprintf(&b, "- Mano de obra: %s\n", formatter.Currency(labour))

	total := materials + labour
	for _, item := range items {
		total += item.Amount
		fmt.Fprintf(&b, "- %s: %s\n", itemLabel(item, ReceiptRepair), formatter.Currency(item.Amount))
	}

	writeReceiptTotal(&b, total)
	fmt.Fprintf(&b, "Garantía: %s días\n", orAgreed(rec, "warrantyDays"))
	writeReceiptFooter(&b, rec)
	return b.String()
}

// ServiceReceipt renders a generic service receipt with a free-text service
// description.
func ServiceReceipt(rec model.Record, items []model.LineItem, now time.Time) string {
	var b strings.Builder
	writeReceiptHeader(&b, "RECIBO DE SERVICIOS", rec, now)

	fmt.Fprintf(&b, "Servicio prestado: %s\n\nDETALLE\n", orAgreed(rec, "serviceDescription"))

	total := parseAmount(rec.Get("amount"))
	if total > 0 {
		fmt.Fprintf(&b, "- Servicio: %s\n", formatter.Currency(total))
	}
	for _, item := range items {
		total += item.Amount
		fmt.Fprintf(&b, "- %s: %s\n", itemLabel(item, ReceiptService), formatter.Currency(item.Amount))
	}

	writeReceiptTotal(&b, total)
	writeReceiptFooter(&b, rec)
	return b.String()
}

func writeReceiptHeader(b *strings.Builder, title string, rec model.Record, now time.Time) {
	fmt.Fprintf(b, "%s N° %s\n\n", title, receiptNumber(now))
	fmt.Fprintf(b, "Fecha de emisión: %s\n", formatter.ShortDate(now))
	fmt.Fprintf(b, "Recibí de: %s, DNI %s\n", orAgreed(rec, "tenantName"), orAgreed(rec, "tenantDni"))
	fmt.Fprintf(b, "Por el inmueble sito en: %s\n", orAgreed(rec, "propertyAddress"))
}

func writeReceiptTotal(b *strings.Builder, total float64) {
	fmt.Fprintf(b, "\nTOTAL: %s\n", formatter.Currency(total))
	fmt.Fprintf(b, "SON PESOS: %s\n\n", amountInWords(total))
}

func writeReceiptFooter(b *strings.Builder, rec model.Record) {
	fmt.Fprintf(b, "\n_________________________\nFirma y aclaración\n%s\n",
		orAgreed(rec, "realtyName"))
}

func itemLabel(item model.LineItem, kind string) string {
	if item.DisplayName != "" {
		return item.DisplayName
	}
	return formatter.ItemName(item.Description, kind)
}
