package asset

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DivisionScale is the number of digits after the decimal point kept in
// the results of [Quantity.Div] and [Quantity.DivRaw].
const DivisionScale = 20

var oneRaw = decimal.NewFromInt(1)

// Quantity type represents an amount of a token, stored as an exact integer
// number of raw units (the smallest indivisible units of the token).
// A whole token is 10^decimals raw units.
// Its zero value is 0 raw units of the zero [Token].
//
// Quantity is immutable and is designed to be safe for concurrent use by
// multiple goroutines.
type Quantity struct {
	token Token           // token the quantity is denominated in
	raw   decimal.Decimal // amount in raw units, always an integer
}

// newQuantityUnsafe creates a new quantity without checking that the raw
// amount is an integer.
// Use it only if you are absolutely sure that the arguments are valid.
func newQuantityUnsafe(t Token, raw decimal.Decimal) Quantity {
	return Quantity{token: t, raw: raw.Truncate(0)}
}

// newQuantitySafe creates a new quantity from an amount interpreted in one
// of two modes.
//
// Without decimals, the amount must be a whole number and it is stored as is,
// with no scaling.
// With decimals, the amount may have up to [Token.Decimals] digits after
// the decimal point and it is scaled by 10^decimals into raw units.
func newQuantitySafe(t Token, amount decimal.Decimal, withDecimals bool) (Quantity, error) {
	digits := fracDigits(amount)
	if !withDecimals {
		if digits > 0 {
			return Quantity{}, fmt.Errorf("%w: input has a non-zero decimal", ErrInvalidInput)
		}
		return newQuantityUnsafe(t, amount), nil
	}
	if digits > t.Decimals() {
		return Quantity{}, fmt.Errorf("%w: input has higher precision (%v decimal places) than token (%v decimal places)", ErrPrecisionOverflow, digits, t.Decimals())
	}
	return newQuantityUnsafe(t, amount.Shift(int32(t.Decimals()))), nil
}

// fracDigits returns the number of digits after the decimal point in
// the canonical string form of d, where trailing zeros are not significant.
// For example, "10.0" has no fractional digits and "5.000001" has 6.
func fracDigits(d decimal.Decimal) int {
	s := d.String()
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(s) - i - 1
}

// NewQuantity converts a decimal string to a quantity of token t.
// The following formats are supported:
//
//	10
//	10.0
//	.5
//	-1.25
//	1e6
//
// If withDecimals is false, the amount is a number of raw units: it must not
// have a non-zero fractional part and it is stored without scaling.
// If withDecimals is true, the amount is a number of whole tokens: it may have
// up to [Token.Decimals] significant digits after the decimal point and it is
// multiplied by 10^decimals.
// For a token with 6 decimals, both "10" without decimals and "0.00001" with
// decimals result in 10 raw units.
//
// NewQuantity returns an error if:
//   - the string is not a valid decimal number ([ErrInvalidInput]);
//   - withDecimals is false and the amount has a non-zero fractional part ([ErrInvalidInput]);
//   - withDecimals is true and the amount has more digits after the decimal
//     point than the token ([ErrPrecisionOverflow]).
func NewQuantity(t Token, amount string, withDecimals bool) (Quantity, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Quantity{}, fmt.Errorf("parsing amount: %w: %w", ErrInvalidInput, err)
	}
	q, err := newQuantitySafe(t, d, withDecimals)
	if err != nil {
		return Quantity{}, fmt.Errorf("parsing amount %q: %w", amount, err)
	}
	return q, nil
}

// MustNewQuantity is like [NewQuantity] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding quantities.
func MustNewQuantity(t Token, amount string, withDecimals bool) Quantity {
	q, err := NewQuantity(t, amount, withDecimals)
	if err != nil {
		panic(fmt.Sprintf("NewQuantity(%v, %q, %v) failed: %v", t, amount, withDecimals, err))
	}
	return q
}

// NewQuantityFromInt64 converts an integer to a quantity of token t.
// See [NewQuantity] for the meaning of withDecimals.
// An integer has no fractional part, so in practice the error is always nil.
func NewQuantityFromInt64(t Token, amount int64, withDecimals bool) (Quantity, error) {
	q, err := newQuantitySafe(t, decimal.NewFromInt(amount), withDecimals)
	if err != nil {
		return Quantity{}, fmt.Errorf("converting integer %v: %w", amount, err)
	}
	return q, nil
}

// NewQuantityFromFloat64 converts a float to a quantity of token t.
// The float is first converted to its shortest decimal representation,
// so 5.01 is treated as "5.01", not as its binary approximation.
// See [NewQuantity] for the meaning of withDecimals.
//
// NewQuantityFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf) ([ErrInvalidInput]);
//   - any of the conditions listed in [NewQuantity] holds.
func NewQuantityFromFloat64(t Token, amount float64, withDecimals bool) (Quantity, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Quantity{}, fmt.Errorf("converting float: %w: special value %v", ErrInvalidInput, amount)
	}
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	q, err := NewQuantity(t, s, withDecimals)
	if err != nil {
		return Quantity{}, fmt.Errorf("converting float: %w", err)
	}
	return q, nil
}

// NewQuantityFromDecimal converts a decimal to a quantity of token t.
// See [NewQuantity] for the meaning of withDecimals and possible errors.
func NewQuantityFromDecimal(t Token, amount decimal.Decimal, withDecimals bool) (Quantity, error) {
	q, err := newQuantitySafe(t, amount, withDecimals)
	if err != nil {
		return Quantity{}, fmt.Errorf("converting decimal %v: %w", amount, err)
	}
	return q, nil
}

// NewQuantityFromRaw returns a quantity of token t equal to the given number
// of raw units.
// It is the inverse of [Quantity.Raw] and is the way to turn the result of
// an arithmetic operation back into a quantity.
//
// NewQuantityFromRaw returns an error if raw is not an integer.
func NewQuantityFromRaw(t Token, raw decimal.Decimal) (Quantity, error) {
	if !raw.IsInteger() {
		return Quantity{}, fmt.Errorf("converting raw units: %w: %v is not an integer", ErrInvalidInput, raw)
	}
	return newQuantityUnsafe(t, raw), nil
}

// Token returns the token of the quantity.
func (q Quantity) Token() Token {
	return q.token
}

// Raw returns the exact amount in raw units.
// See also methods [Quantity.RawInt] and [Quantity.RawBigInt].
func (q Quantity) Raw() decimal.Decimal {
	return q.raw
}

// RawBigInt returns the exact amount in raw units as a new big integer.
func (q Quantity) RawBigInt() *big.Int {
	return q.raw.BigInt()
}

// RawInt returns the amount in raw units as an int64.
// The result is undefined if the amount does not fit into an int64;
// use [Quantity.RawBigInt] for amounts that may be that large.
func (q Quantity) RawInt() int64 {
	return q.raw.IntPart()
}

// Decimal returns the exact amount in whole tokens, that is raw / 10^decimals.
// The result does not depend on how the quantity was constructed.
func (q Quantity) Decimal() decimal.Decimal {
	return q.raw.Shift(-int32(q.token.Decimals()))
}

// Float64 returns the nearest binary floating-point number to the amount
// in whole tokens.
//
// This conversion may lose data, as float64 has a smaller precision
// than the decimal type.
func (q Quantity) Float64() float64 {
	f, _ := q.Decimal().Float64()
	return f
}

// String implements the [fmt.Stringer] interface and returns the amount in
// whole tokens, without trailing zeros.
// For a token with 6 decimals, 10 raw units are "0.00001" and 1,000,000 raw
// units are "1".
// See also method [Quantity.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (q Quantity) String() string {
	return q.Decimal().String()
}

// Sign returns:
//
//	-1 if q < 0
//	 0 if q = 0
//	+1 if q > 0
func (q Quantity) Sign() int {
	return q.raw.Sign()
}

// IsZero returns:
//
//	true  if q = 0
//	false otherwise
func (q Quantity) IsZero() bool {
	return q.raw.IsZero()
}

// Plus returns the sum of raw amounts of quantities q and b.
// The result is in raw units and is not checked against any token;
// see [NewQuantityFromRaw] to turn it into a quantity.
func (q Quantity) Plus(b Quantity) decimal.Decimal {
	return q.PlusRaw(b.Raw())
}

// PlusRaw returns the sum of the raw amount of quantity q and value e.
// Value e is used as is, it is not scaled by the decimals of the token.
func (q Quantity) PlusRaw(e decimal.Decimal) decimal.Decimal {
	return q.raw.Add(e)
}

// Minus returns the difference between raw amounts of quantities q and b.
// The result is in raw units; see [Quantity.Plus].
func (q Quantity) Minus(b Quantity) decimal.Decimal {
	return q.MinusRaw(b.Raw())
}

// MinusRaw returns the difference between the raw amount of quantity q and value e.
// Value e is used as is, it is not scaled by the decimals of the token.
func (q Quantity) MinusRaw(e decimal.Decimal) decimal.Decimal {
	return q.raw.Sub(e)
}

// Times returns the product of raw amounts of quantities q and b.
// Note that the product of two raw amounts is scaled by 10^decimals twice.
func (q Quantity) Times(b Quantity) decimal.Decimal {
	return q.TimesRaw(b.Raw())
}

// TimesRaw returns the product of the raw amount of quantity q and factor e.
// Factor e is used as is, it is not scaled by the decimals of the token.
func (q Quantity) TimesRaw(e decimal.Decimal) decimal.Decimal {
	return q.raw.Mul(e)
}

// Div returns the quotient of raw amounts of quantities q and b, rounded to
// [DivisionScale] digits after the decimal point.
// Dividing quantities of the same token gives their ratio; dividing by
// a quantity created without decimals divides by its raw units.
//
// Div returns an error if:
//   - the raw amount of b is 0 ([ErrDivisionByZero]);
//   - the quotient is less than or equal to 1 ([ErrUnderflow]).
func (q Quantity) Div(b Quantity) (decimal.Decimal, error) {
	d, err := q.div(b.Raw())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("computing [%v / %v]: %w", q.Raw(), b.Raw(), err)
	}
	return d, nil
}

// DivRaw returns the quotient of the raw amount of quantity q and divisor e.
// Divisor e is used as is, it is not scaled by the decimals of the token.
// See [Quantity.Div] for rounding and possible errors.
func (q Quantity) DivRaw(e decimal.Decimal) (decimal.Decimal, error) {
	d, err := q.div(e)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("computing [%v / %v]: %w", q.Raw(), e, err)
	}
	return d, nil
}

func (q Quantity) div(e decimal.Decimal) (decimal.Decimal, error) {
	if e.IsZero() {
		return decimal.Decimal{}, ErrDivisionByZero
	}
	d := q.raw.DivRound(e, DivisionScale)
	// A quotient of 1 raw unit or less collapses the quantity.
	if d.LessThanOrEqual(oneRaw) {
		return decimal.Decimal{}, fmt.Errorf("%w: quotient %v is not greater than 1", ErrUnderflow, d)
	}
	return d, nil
}

// Cmp compares amounts of quantities in whole tokens and returns:
//
//	-1 if q < b
//	 0 if q = b
//	+1 if q > b
//
// Quantities are compared by [Quantity.Decimal], not by raw units, so
// quantities of tokens with different decimals compare by their magnitude.
// The tokens themselves are ignored.
func (q Quantity) Cmp(b Quantity) int {
	return q.Decimal().Cmp(b.Decimal())
}

// LessThan returns true if q < b. See also method [Quantity.Cmp].
func (q Quantity) LessThan(b Quantity) bool {
	return q.Cmp(b) < 0
}

// LessThanOrEqual returns true if q <= b. See also method [Quantity.Cmp].
func (q Quantity) LessThanOrEqual(b Quantity) bool {
	return q.Cmp(b) <= 0
}

// Equal returns true if q = b. See also method [Quantity.Cmp].
// Unlike [Quantity.Identical], Equal ignores the tokens.
func (q Quantity) Equal(b Quantity) bool {
	return q.Cmp(b) == 0
}

// GreaterThan returns true if q > b. See also method [Quantity.Cmp].
func (q Quantity) GreaterThan(b Quantity) bool {
	return q.Cmp(b) > 0
}

// GreaterThanOrEqual returns true if q >= b. See also method [Quantity.Cmp].
func (q Quantity) GreaterThanOrEqual(b Quantity) bool {
	return q.Cmp(b) >= 0
}

// Identical returns true if quantities have the same token and the same
// amount in raw units.
// See also method [Quantity.Equal].
func (q Quantity) Identical(b Quantity) bool {
	return q.SameToken(b) && q.raw.Equal(b.raw)
}

// SameToken returns true if quantities are denominated in the same token.
func (q Quantity) SameToken(b Quantity) bool {
	return q.Token() == b.Token()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example      | Description                      |
//	| ------ | ------------ | -------------------------------- |
//	| %s, %v | 5.00025      | Amount in whole tokens           |
//	| %q     | "5.00025"    | Quoted amount in whole tokens    |
//	| %f     | 5.000250     | Amount with fixed decimals       |
//	| %d     | 5000250      | Amount in raw units              |
//	| %c     | USDC         | Symbol of the token              |
//
// The '-' format flag can be used with all verbs.
// The '+', ' ', '0' format flags can be used with %f and %d.
//
// Precision is only supported for the %f verb.
// The default precision is equal to the decimals of the token.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (q Quantity) Format(state fmt.State, verb rune) {
	var s string
	numeric := false
	switch verb {
	case 's', 'S', 'v', 'V':
		s = q.String()
	case 'q', 'Q':
		s = `"` + q.String() + `"`
	case 'f', 'F':
		scale := q.Token().Decimals()
		if p, ok := state.Precision(); ok {
			scale = p
		}
		s = q.Decimal().StringFixed(int32(scale))
		numeric = true
	case 'd', 'D':
		s = q.Raw().String()
		numeric = true
	case 'c', 'C':
		s = q.Token().Symbol()
	default:
		s = "%!" + string(verb) + "(asset.Quantity=" + q.String() + ")"
	}
	if numeric && q.Sign() >= 0 {
		switch {
		case state.Flag('+'):
			s = "+" + s
		case state.Flag(' '):
			s = " " + s
		}
	}
	writePadded(state, s, numeric)
}
