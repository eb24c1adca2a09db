// Package whatsapp builds wa.me deep links for contacting customers about
// their orders. The shop notifies customers manually over WhatsApp; the link
// pre-fills the message so the operator only has to press send.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizePhone strips formatting characters and the leading plus sign,
// leaving the digits wa.me expects. A leading "0" on a local Bangladeshi
// number is replaced with the 880 country code.
func NormalizePhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	number := digits.String()
	if strings.HasPrefix(number, "0") {
		number = "880" + number[1:]
	}
	return number
}

// OrderCreatedLink returns a wa.me link with a pre-filled order confirmation
// message for the given customer.
func OrderCreatedLink(phone, customerName, orderNumber string, total float64) string {
	text := fmt.Sprintf(
		"Assalamualaikum %s! We received your order %s (total %.2f BDT). We will confirm it shortly.",
		customerName, orderNumber, total,
	)
	return link(phone, text)
}

// StatusChangedLink returns a wa.me link with a pre-filled status update
// message for the given customer.
func StatusChangedLink(phone, customerName, orderNumber, status string) string {
	text := fmt.Sprintf(
		"Assalamualaikum %s! Your order %s is now %s.",
		customerName, orderNumber, status,
	)
	return link(phone, text)
}

func link(phone, text string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", NormalizePhone(phone), url.QueryEscape(text))
}
