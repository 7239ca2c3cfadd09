// Package contact builds the outbound handoff targets: the fixed support
// phone number and the WhatsApp deep link with a prewritten order summary.
package contact

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Brandbong/Vedham/internal/domain"
)

const (
	SupportPhone   = "9842909360"
	whatsappNumber = "919842909360"
)

// WhatsAppCartLink prefills the standard "I want to order" message with the
// cart's payable total.
func WhatsAppCartLink(total int64) string {
	text := fmt.Sprintf("Hi! I want to order products worth ₹%d from my cart.", total)
	return "https://wa.me/" + whatsappNumber + "?text=" + url.QueryEscape(text)
}

// OrderSummaryText renders the order as plain "name × qty" lines plus the
// total, for whatever outbound template the UI layer uses.
func OrderSummaryText(order *domain.Order) string {
	var b strings.Builder
	for _, line := range order.Items.Lines {
		fmt.Fprintf(&b, "%s × %d\n", line.Product.Name, line.Quantity)
	}
	fmt.Fprintf(&b, "Total: ₹%d", order.Total)
	return b.String()
}
