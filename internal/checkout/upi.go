package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Brandbong/Vedham/internal/domain"
)

// UPIPayee identifies the receiving account for UPI deep links.
type UPIPayee struct {
	Address string // virtual payment address, e.g. "vijaya2015.ve@oksbi"
	Name    string // display name shown in the payment app
}

// BuildUPILink constructs the payment deep link for an order. The parameter
// names (pa, pn, am, cu, tn) and the whole-rupee integer amount are a fixed
// contract with the payment apps and must not change. Spaces are encoded as
// %20 because several UPI apps reject '+'.
func BuildUPILink(payee UPIPayee, order *domain.Order) string {
	params := url.Values{}
	params.Set("pa", payee.Address)
	params.Set("pn", payee.Name)
	params.Set("am", fmt.Sprintf("%d", order.Total))
	params.Set("cu", "INR")
	params.Set("tn", fmt.Sprintf("Order %s", order.OrderID))

	query := strings.ReplaceAll(params.Encode(), "+", "%20")
	return "upi://pay?" + query
}
