package utils

import (
	"fmt"
	"math/rand"
	"time"
)

const invoiceSuffixLength = 6
const invoiceChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewInvoiceNumber returns an "INV-YYYYMM-XXXXXX" reference. Uniqueness
// is enforced by the invoice_number column; callers retry on collision.
func NewInvoiceNumber() string {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	b := make([]byte, invoiceSuffixLength)
	for i := range b {
		b[i] = invoiceChars[seededRand.Intn(len(invoiceChars))]
	}

	return fmt.Sprintf("INV-%s-%s", time.Now().Format("200601"), string(b))
}
