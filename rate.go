package asset

import (
	"fmt"

	"github.com/govalues/decimal"
	sdec "github.com/shopspring/decimal"
)

// Rate represents a unidirectional price between two tokens.
// The zero value is a rate of 0 between two zero tokens and cannot be used
// for conversion.
// This type is designed to be safe for concurrent use by multiple goroutines.
type Rate struct {
	base  Token           // token being sold
	quote Token           // token being bought
	value decimal.Decimal // how many whole quote tokens are paid for 1 whole base token
}

// NewRate returns a new rate between the base and quote tokens.
//
// NewRate returns an error if:
//   - the rate is not positive;
//   - the tokens are the same token and the rate is not 1.
func NewRate(base, quote Token, rate decimal.Decimal) (Rate, error) {
	if !rate.IsPos() {
		return Rate{}, fmt.Errorf("rate must be positive")
	}
	if base == quote && !rate.IsOne() {
		return Rate{}, fmt.Errorf("rate must be equal to 1")
	}
	return Rate{base: base, quote: quote, value: rate}, nil
}

// ParseRate converts a decimal string to a rate between the base and quote tokens.
// See also constructors [NewRate] and [decimal.Parse].
func ParseRate(base, quote Token, rate string) (Rate, error) {
	d, err := decimal.Parse(rate)
	if err != nil {
		return Rate{}, fmt.Errorf("rate parsing: %w", err)
	}
	r, err := NewRate(base, quote, d)
	if err != nil {
		return Rate{}, fmt.Errorf("rate construction: %w", err)
	}
	return r, nil
}

// MustParseRate is like [ParseRate] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding rates.
func MustParseRate(base, quote Token, rate string) Rate {
	r, err := ParseRate(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("ParseRate(%v, %v, %q) failed: %v", base, quote, rate, err))
	}
	return r
}

// Base returns the token being sold.
func (r Rate) Base() Token {
	return r.base
}

// Quote returns the token being bought.
func (r Rate) Quote() Token {
	return r.quote
}

// Decimal returns the rate as a decimal.
func (r Rate) Decimal() decimal.Decimal {
	return r.value
}

// Inv returns the inverse rate, from the quote token to the base token.
//
// Inv returns an error if the rate is zero or if the inverse cannot be represented.
func (r Rate) Inv() (Rate, error) {
	if r.value.IsZero() {
		return Rate{}, fmt.Errorf("inverting %v: %w", r, ErrDivisionByZero)
	}
	one := r.value.One()
	d, err := one.Quo(r.value)
	if err != nil {
		return Rate{}, fmt.Errorf("inverting %v: %w", r, err)
	}
	return NewRate(r.Quote(), r.Base(), d)
}

// CanConv returns true if [Rate.Conv] can be used to convert the given quantity.
func (r Rate) CanConv(q Quantity) bool {
	return q.Token() == r.Base() && r.value.IsPos()
}

// Conv returns the quantity converted from the base token to the quote token.
// The result is truncated to the decimals of the quote token, so it never
// exceeds the exact converted amount.
//
// Conv returns an error if the token of the quantity is not the base token
// of the rate.
func (r Rate) Conv(q Quantity) (Quantity, error) {
	if !r.CanConv(q) {
		return Quantity{}, fmt.Errorf("converting %v %v with %v: %w", q, q.Token(), r, ErrTokenMismatch)
	}
	rate := sdec.RequireFromString(r.value.String())
	d := q.Decimal().Mul(rate).Truncate(int32(r.Quote().Decimals()))
	return newQuantityUnsafe(r.Quote(), d.Shift(int32(r.Quote().Decimals()))), nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the rate, such as "WETH/USDC 3120.55".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rate) String() string {
	return r.Base().Symbol() + "/" + r.Quote().Symbol() + " " + r.value.String()
}
