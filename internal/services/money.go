package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"payhub/pkg/utils"
)

// normalizeMoney re-checks what the validation collaborator already enforced:
// amounts are positive with two decimal places, currencies are 3 letters.
func normalizeMoney(amount float64, currency string) (decimal.Decimal, string, error) {
	value := decimal.NewFromFloat(amount).Round(2)
	if value.LessThan(minAmount) {
		return decimal.Decimal{}, "", utils.ErrInvalidAmount
	}

	code := strings.ToUpper(strings.TrimSpace(currency))
	if len(code) != 3 {
		return decimal.Decimal{}, "", utils.ErrInvalidCurrency
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return decimal.Decimal{}, "", utils.ErrInvalidCurrency
		}
	}

	return value, code, nil
}
