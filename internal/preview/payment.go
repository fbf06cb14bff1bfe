package preview

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrIncompletePayment = errors.New("all payment fields are required")

func digits(s string, limit int) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			if b.Len() == limit {
				break
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCardNumber keeps up to 16 digits in groups of four: "4242 4242 4242 4242".
func FormatCardNumber(value string) string {
	d := digits(value, 16)
	parts := make([]string, 0, 4)
	for i := 0; i < len(d); i += 4 {
		parts = append(parts, d[i:min(i+4, len(d))])
	}
	return strings.Join(parts, " ")
}

// FormatExpiry turns typed digits into MM/YY once two digits are present.
func FormatExpiry(value string) string {
	d := digits(value, 4)
	if len(d) >= 2 {
		return d[:2] + "/" + d[2:]
	}
	return d
}

func FormatCVV(value string) string {
	return digits(value, 4)
}

type PaymentDetails struct {
	CardNumber     string `json:"cardNumber"`
	Expiry         string `json:"expiryDate"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholderName"`
	Email          string `json:"email"`
}

// Normalize applies the input masks to the card fields.
func (p PaymentDetails) Normalize() PaymentDetails {
	p.CardNumber = FormatCardNumber(p.CardNumber)
	p.Expiry = FormatExpiry(p.Expiry)
	p.CVV = FormatCVV(p.CVV)
	p.CardholderName = strings.TrimSpace(p.CardholderName)
	p.Email = strings.TrimSpace(p.Email)
	return p
}

func (p PaymentDetails) complete() bool {
	for _, v := range []string{p.CardNumber, p.Expiry, p.CVV, p.CardholderName, p.Email} {
		if v == "" {
			return false
		}
	}
	return true
}

type Receipt struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	Last4       string    `json:"last4"`
	ProcessedAt time.Time `json:"processedAt"`
}

// MockProcessor pretends to charge a card. Nothing leaves the process.
type MockProcessor struct {
	Delay time.Duration
}

// Process waits Delay and then always succeeds for complete details.
func (m MockProcessor) Process(ctx context.Context, details PaymentDetails) (*Receipt, error) {
	details = details.Normalize()
	if !details.complete() {
		return nil, ErrIncompletePayment
	}

	if m.Delay > 0 {
		timer := time.NewTimer(m.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	card := strings.ReplaceAll(details.CardNumber, " ", "")
	last4 := card[max(0, len(card)-4):]
	log.Printf("Mock payment accepted for card ending %s", last4)
	return &Receipt{
		ID:          uuid.New().String(),
		Status:      "succeeded",
		Last4:       last4,
		ProcessedAt: time.Now().UTC(),
	}, nil
}
