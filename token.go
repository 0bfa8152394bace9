package asset

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// MaxDecimals is the largest number of decimals a token can have.
// It matches the range of the ERC-20 decimals field, which is uint8.
const MaxDecimals = 255

// Token type represents a fungible asset, such as an ERC-20 contract or an
// SPL mint.
// Its zero value is a token with an empty symbol, an empty address,
// and 0 decimals.
//
// A token is immutable once created, so it is safe for concurrent use by
// multiple goroutines and can be freely copied.
// Two tokens are the same token if all of their fields are equal.
type Token struct {
	symbol   string // display label, not unique
	address  string // identifier, compared without regard to case
	decimals uint8  // scale exponent of raw units
}

// NewToken returns a token with the given symbol, address and number of decimals.
// The address is kept as is; see [Token.AddressBytes] to validate it.
//
// NewToken returns an error if decimals is negative or greater than [MaxDecimals].
func NewToken(symbol, address string, decimals int) (Token, error) {
	if decimals < 0 || decimals > MaxDecimals {
		return Token{}, fmt.Errorf("creating token %q: %w: %v is not within [0, %v]", symbol, ErrInvalidDecimals, decimals, MaxDecimals)
	}
	return Token{symbol: symbol, address: address, decimals: uint8(decimals)}, nil
}

// MustNewToken is like [NewToken] but panics if the token cannot be constructed.
// It simplifies safe initialization of global variables holding tokens.
func MustNewToken(symbol, address string, decimals int) Token {
	t, err := NewToken(symbol, address, decimals)
	if err != nil {
		panic(fmt.Sprintf("NewToken(%q, %q, %v) failed: %v", symbol, address, decimals, err))
	}
	return t
}

// Symbol returns the display label of the token.
func (t Token) Symbol() string {
	return t.symbol
}

// Address returns the address of the token exactly as it was given.
func (t Token) Address() string {
	return t.address
}

// Decimals returns the number of digits after the decimal point that
// raw units of the token represent.
// A token with 6 decimals has 1,000,000 raw units in one whole token.
func (t Token) Decimals() int {
	return int(t.decimals)
}

// SameAddress returns true if tokens have the same address, ignoring case.
// See also function [CompareTokens].
func (t Token) SameAddress(b Token) bool {
	return strings.EqualFold(t.Address(), b.Address())
}

// CompareTokens compares addresses of tokens a and b, ignoring case, and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// It is meant to be used as a comparator for [slices.SortStableFunc].
func CompareTokens(a, b Token) int {
	return strings.Compare(strings.ToLower(a.Address()), strings.ToLower(b.Address()))
}

// NewQuantity converts a decimal string to a quantity of the token.
// It is a shorthand for [NewQuantity].
func (t Token) NewQuantity(amount string, withDecimals bool) (Quantity, error) {
	return NewQuantity(t, amount, withDecimals)
}

// MustNewQuantity is like [Token.NewQuantity] but panics if the quantity
// cannot be constructed.
func (t Token) MustNewQuantity(amount string, withDecimals bool) Quantity {
	q, err := t.NewQuantity(amount, withDecimals)
	if err != nil {
		panic(fmt.Sprintf("NewQuantity(%v, %q, %v) failed: %v", t, amount, withDecimals, err))
	}
	return q
}

// NewQuantityFromInt64 converts an integer to a quantity of the token.
// It is a shorthand for [NewQuantityFromInt64].
func (t Token) NewQuantityFromInt64(amount int64, withDecimals bool) (Quantity, error) {
	return NewQuantityFromInt64(t, amount, withDecimals)
}

// NewQuantityFromFloat64 converts a float to a quantity of the token.
// It is a shorthand for [NewQuantityFromFloat64].
func (t Token) NewQuantityFromFloat64(amount float64, withDecimals bool) (Quantity, error) {
	return NewQuantityFromFloat64(t, amount, withDecimals)
}

// String implements the [fmt.Stringer] interface and returns the symbol of
// the token.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (t Token) String() string {
	return t.Symbol()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example        | Description          |
//	| ------ | -------------- | -------------------- |
//	| %s, %v | USDC           | Symbol               |
//	| %q     | "USDC"         | Quoted symbol        |
//	| %a     | 0xa0b8...eb48  | Address              |
//	| %d     | 6              | Decimals             |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (t Token) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 's', 'S', 'v', 'V':
		s = t.Symbol()
	case 'q', 'Q':
		s = `"` + t.Symbol() + `"`
	case 'a', 'A':
		s = t.Address()
	case 'd', 'D':
		s = fmt.Sprint(t.Decimals())
	default:
		s = "%!" + string(verb) + "(asset.Token=" + t.Symbol() + ")"
	}
	writePadded(state, s, false)
}

// tokenJSON is the wire shape of a token, shared by the JSON and YAML codecs.
type tokenJSON struct {
	Symbol   string `json:"symbol" yaml:"symbol"`
	Address  string `json:"address" yaml:"address"`
	Decimals int    `json:"decimals" yaml:"decimals"`
}

func (t Token) wire() tokenJSON {
	return tokenJSON{Symbol: t.Symbol(), Address: t.Address(), Decimals: t.Decimals()}
}

func (w tokenJSON) token() (Token, error) {
	return NewToken(w.Symbol, w.Address, w.Decimals)
}

// MarshalJSON implements the [json.Marshaler] interface.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.wire())
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The number of decimals is validated the same way as in [NewToken].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (t *Token) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var w tokenJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Token{}, err)
	}
	var err error
	*t, err = w.token()
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Token{}, err)
	}
	return nil
}

// MarshalYAML implements the [yaml.Marshaler] interface.
//
// [yaml.Marshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Marshaler
func (t Token) MarshalYAML() (any, error) {
	return t.wire(), nil
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
// The number of decimals is validated the same way as in [NewToken].
//
// [yaml.Unmarshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Unmarshaler
func (t *Token) UnmarshalYAML(node *yaml.Node) error {
	var w tokenJSON
	if err := node.Decode(&w); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Token{}, err)
	}
	var err error
	*t, err = w.token()
	if err != nil {
		return fmt.Errorf("unmarshaling %T at line %v: %w", Token{}, node.Line, err)
	}
	return nil
}

// writePadded writes s to the state, honouring its width and the '-' flag.
// If zeros is true, the '0' flag pads with leading zeros after the sign.
func writePadded(state fmt.State, s string, zeros bool) {
	w, ok := state.Width()
	if !ok || w <= len(s) {
		state.Write([]byte(s)) //nolint:errcheck
		return
	}
	pad := w - len(s)
	switch {
	case state.Flag('-'):
		s += strings.Repeat(" ", pad)
	case zeros && state.Flag('0'):
		sign := ""
		if len(s) > 0 && (s[0] == '-' || s[0] == '+' || s[0] == ' ') {
			sign, s = s[:1], s[1:]
		}
		s = sign + strings.Repeat("0", pad) + s
	default:
		s = strings.Repeat(" ", pad) + s
	}
	state.Write([]byte(s)) //nolint:errcheck
}
