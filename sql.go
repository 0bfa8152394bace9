package asset

import (
	"database/sql/driver"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Value implements the [driver.Valuer] interface.
// The quantity is stored as its amount in raw units, without the token,
// which is expected to live in another column.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (q Quantity) Value() (driver.Value, error) {
	return q.Raw().String(), nil
}

// NumericValue implements the [pgtype.NumericValuer] interface, so pgx can
// write a quantity into a numeric column without going through a string.
// The value is the amount in raw units.
//
// [pgtype.NumericValuer]: https://pkg.go.dev/github.com/jackc/pgx/v5/pgtype#NumericValuer
func (q Quantity) NumericValue() (pgtype.Numeric, error) {
	return pgtype.Numeric{Int: q.RawBigInt(), Exp: 0, Valid: true}, nil
}

// NewQuantityFromNumeric converts a numeric value holding raw units, as
// read by pgx, to a quantity of token t.
// See also method [Quantity.NumericValue].
//
// NewQuantityFromNumeric returns an error if the value is NULL, NaN,
// infinite, or not an integer.
func NewQuantityFromNumeric(t Token, n pgtype.Numeric) (Quantity, error) {
	switch {
	case !n.Valid:
		return Quantity{}, fmt.Errorf("converting from %T to %T: %w: null value", n, Quantity{}, ErrInvalidInput)
	case n.NaN:
		return Quantity{}, fmt.Errorf("converting from %T to %T: %w: NaN", n, Quantity{}, ErrInvalidInput)
	case n.InfinityModifier != pgtype.Finite:
		return Quantity{}, fmt.Errorf("converting from %T to %T: %w: infinity", n, Quantity{}, ErrInvalidInput)
	}
	var raw decimal.Decimal
	if n.Int != nil {
		raw = decimal.NewFromBigInt(n.Int, n.Exp)
	}
	q, err := NewQuantityFromRaw(t, raw)
	if err != nil {
		return Quantity{}, fmt.Errorf("converting from %T to %T: %w", n, Quantity{}, err)
	}
	return q, nil
}

// NewQuantityFromNumeric is a shorthand for [NewQuantityFromNumeric].
func (t Token) NewQuantityFromNumeric(n pgtype.Numeric) (Quantity, error) {
	return NewQuantityFromNumeric(t, n)
}
