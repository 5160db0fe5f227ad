package utils

import (
	"strings"
	"testing"
	"time"
)

func TestNewInvoiceNumber_Format(t *testing.T) {
	number := NewInvoiceNumber()

	parts := strings.Split(number, "-")
	if len(parts) != 3 {
		t.Fatalf("expected INV-YYYYMM-XXXXXX, got %s", number)
	}
	if parts[0] != "INV" {
		t.Errorf("expected INV prefix, got %s", parts[0])
	}
	if parts[1] != time.Now().Format("200601") {
		t.Errorf("expected current year-month %s, got %s", time.Now().Format("200601"), parts[1])
	}
	if len(parts[2]) != invoiceSuffixLength {
		t.Errorf("expected %d-character suffix, got %q", invoiceSuffixLength, parts[2])
	}
	for _, ch := range parts[2] {
		if !strings.ContainsRune(invoiceChars, ch) {
			t.Errorf("suffix contains unexpected character %q", ch)
		}
	}
}
