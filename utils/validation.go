package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidateJSON validates that a string is valid JSON
func ValidateJSON(data string) error {
	var js json.RawMessage
	return json.Unmarshal([]byte(data), &js)
}

// ValidateAmount checks if an amount string is a valid non-negative decimal
func ValidateAmount(amount string) (*decimal.Decimal, error) {
	if amount == "" {
		return nil, fmt.Errorf("amount cannot be empty")
	}

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount format: %w", err)
	}

	if dec.IsNegative() {
		return nil, fmt.Errorf("amount cannot be negative")
	}

	return &dec, nil
}

// ValidateCardNumber checks PAN length, digits, and the Luhn check digit.
// Lengths 13-19 cover every card brand the gateway accepts.
func ValidateCardNumber(pan string) error {
	if pan == "" {
		return fmt.Errorf("card number is required")
	}
	if !IsDigits(pan) {
		return fmt.Errorf("card number must contain digits only")
	}
	if l := len(pan); l < 13 || l > 19 {
		return fmt.Errorf("card number length must be 13..19 digits (got %d)", l)
	}
	if !luhnValid(pan) {
		return fmt.Errorf("invalid luhn check digit")
	}
	return nil
}

func luhnValid(pan string) bool {
	sum, dbl := 0, false
	for i := len(pan) - 1; i >= 0; i-- {
		d := int(pan[i] - '0')
		if dbl {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		dbl = !dbl
	}
	return sum%10 == 0
}

// ValidateExpiration checks the MMYY format the flat "exp" field carries.
func ValidateExpiration(exp string) error {
	if len(exp) != 4 {
		return fmt.Errorf("expiration must be MMYY (4 digits)")
	}
	if !IsDigits(exp) {
		return fmt.Errorf("expiration must be digits: MMYY")
	}
	mm := int(exp[0]-'0')*10 + int(exp[1]-'0')
	if mm < 1 || mm > 12 {
		return fmt.Errorf("expiration month must be 01..12")
	}
	return nil
}

func IsDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MaskCardNumber hides all but the first 6 and last 4 digits, for logs and
// display. Short inputs are fully masked.
func MaskCardNumber(pan string) string {
	n := len(pan)
	if n == 0 {
		return ""
	}
	if n < 10 {
		return strings.Repeat("*", n)
	}
	return pan[:6] + strings.Repeat("*", n-10) + pan[n-4:]
}
