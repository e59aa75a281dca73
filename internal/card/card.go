// Package card models consumer credit cards: a plain card that enforces its
// credit limit, and a predatory variant that layers fees and monthly interest
// on top of the same charge logic.
package card

// Card is the behavior shared by every card in a wallet.
type Card interface {
	Customer() string
	Bank() string
	Account() string
	Limit() float64
	Balance() float64
	Charge(price float64) bool
	MakePayment(amount float64)
}

// CreditCard is a consumer credit card. The balance starts at zero and only
// moves through Charge and MakePayment.
type CreditCard struct {
	customer string
	bank     string
	account  string
	limit    float64
	balance  float64
}

// New creates a credit card for the given customer with a zero balance.
func New(customer, bank, account string, limit float64) *CreditCard {
	return &CreditCard{
		customer: customer,
		bank:     bank,
		account:  account,
		limit:    limit,
	}
}

// Customer returns the name of the customer.
func (c *CreditCard) Customer() string { return c.customer }

// Bank returns the bank's name.
func (c *CreditCard) Bank() string { return c.bank }

// Account returns the card identifying number.
func (c *CreditCard) Account() string { return c.account }

// Limit returns the credit limit.
func (c *CreditCard) Limit() float64 { return c.limit }

// Balance returns the current balance.
func (c *CreditCard) Balance() float64 { return c.balance }

// Charge adds price to the balance if the result stays within the credit
// limit. It reports whether the charge was processed; a denied charge leaves
// the balance untouched.
func (c *CreditCard) Charge(price float64) bool {
	if c.balance+price > c.limit {
		return false
	}
	c.balance += price
	return true
}

// MakePayment reduces the balance by amount. No clamping: the caller may
// overpay and drive the balance negative.
func (c *CreditCard) MakePayment(amount float64) {
	c.balance -= amount
}
