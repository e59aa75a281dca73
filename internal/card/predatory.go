package card

import "math"

// OverlimitFee is the flat fee assessed when a charge is denied.
const OverlimitFee = 5

// PredatoryCard extends CreditCard with an over-limit fee and monthly
// interest compounding.
type PredatoryCard struct {
	CreditCard
	apr float64
}

// NewPredatory creates a predatory card with the given annual percentage
// rate (fractional, e.g. 0.0825 for 8.25% APR).
func NewPredatory(customer, bank, account string, limit, apr float64) *PredatoryCard {
	return &PredatoryCard{
		CreditCard: CreditCard{
			customer: customer,
			bank:     bank,
			account:  account,
			limit:    limit,
		},
		apr: apr,
	}
}

// APR returns the annual percentage rate.
func (p *PredatoryCard) APR() float64 { return p.apr }

// Charge behaves like CreditCard.Charge, except a denied charge assesses the
// over-limit fee. The fee is added even when it pushes the balance further
// past the limit; there is no re-check.
func (p *PredatoryCard) Charge(price float64) bool {
	if p.CreditCard.Charge(price) {
		return true
	}
	p.balance += OverlimitFee
	return false
}

// ProcessMonth assesses one month of interest on a positive outstanding
// balance, converting the APR to a monthly multiplicative factor. Balances
// at or below zero are left alone.
func (p *PredatoryCard) ProcessMonth() {
	if p.balance > 0 {
		p.balance *= math.Pow(1+p.apr, 1.0/12)
	}
}
