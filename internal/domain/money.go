package domain

import "github.com/shopspring/decimal"

const moneyPlaces = 2

// Commission returns the fee withheld from amount.
func Commission(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(CommissionRate).Round(moneyPlaces)
}

// PayoutAmount returns a worker's share of amount after commission.
func PayoutAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(1).Sub(CommissionRate)).Round(moneyPlaces)
}
