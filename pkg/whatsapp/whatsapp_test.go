package whatsapp_test

import (
	"strings"
	"testing"

	"bazar/pkg/whatsapp"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "8801712345678", whatsapp.NormalizePhone("01712-345678"))
	assert.Equal(t, "8801712345678", whatsapp.NormalizePhone("+880 1712 345678"))
	assert.Equal(t, "8801712345678", whatsapp.NormalizePhone("8801712345678"))
}

func TestOrderCreatedLink(t *testing.T) {
	link := whatsapp.OrderCreatedLink("01712345678", "Ayesha", "ORD-1700000000000-AB12C", 1170)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/8801712345678?text="))
	assert.Contains(t, link, "ORD-1700000000000-AB12C")
	assert.NotContains(t, link, " ") // message text is query-escaped
}

func TestStatusChangedLink(t *testing.T) {
	link := whatsapp.StatusChangedLink("01712345678", "Ayesha", "ORD-1700000000000-AB12C", "shipped")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/8801712345678?text="))
	assert.Contains(t, link, "shipped")
}
