// Package checkout turns a cart into the WhatsApp order message. The text
// layout is read by a human on the shop's phone; treat it as a wire format
// and do not reflow it.
package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ThaRealJozef/DimaVelo-sub000/models"
)

// Order is everything the checkout form collects, plus the cart lines.
type Order struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Address       string
	Notes         string
	Items         []models.CartItem
}

// Total sums the promotion-aware line subtotals. It matches the cart store's
// total for the same lines.
func (o *Order) Total() float64 {
	var total float64
	for i := range o.Items {
		total += o.Items[i].Subtotal()
	}
	return total
}

// BuildMessage renders the order as the plain-text block sent over WhatsApp:
// header banner, customer block, numbered item lines with unit price and
// subtotal, grand total, delivery address, optional notes, sign-off.
func BuildMessage(o *Order) string {
	var b strings.Builder

	b.WriteString("🚴 *NOUVELLE COMMANDE - DimaVelo* 🚴\n\n")

	b.WriteString(fmt.Sprintf("*Client:* %s\n", o.CustomerName))
	if o.CustomerEmail != "" {
		b.WriteString(fmt.Sprintf("*Email:* %s\n", o.CustomerEmail))
	}
	b.WriteString(fmt.Sprintf("*Téléphone:* %s\n\n", o.CustomerPhone))

	b.WriteString("*Articles:*\n")
	for i := range o.Items {
		item := &o.Items[i]
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, item.Name))
		b.WriteString(fmt.Sprintf("   Quantité: %d\n", item.Quantity))
		b.WriteString(fmt.Sprintf("   Prix unitaire: %.2f DH\n", item.UnitPrice()))
		b.WriteString(fmt.Sprintf("   Sous-total: %.2f DH\n", item.Subtotal()))
	}

	b.WriteString(fmt.Sprintf("\n*TOTAL: %.2f DH*\n\n", o.Total()))

	b.WriteString("*Adresse de livraison:*\n")
	b.WriteString(o.Address + "\n")

	if o.Notes != "" {
		b.WriteString("\n*Remarques:*\n")
		b.WriteString(o.Notes + "\n")
	}

	b.WriteString("\nMerci de confirmer la disponibilité. 🙏")

	return b.String()
}

// WhatsAppURL builds the wa.me deep link carrying the message. The shop
// number keeps digits only; wa.me rejects "+" and spaces.
func WhatsAppURL(shopPhone, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, shopPhone)

	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message)
}
