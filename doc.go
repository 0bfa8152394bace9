/*
Package asset implements exact quantities of tokens with configurable decimal
precision, such as ERC-20 or SPL token amounts.
It leverages the [decimal] package's arbitrary-precision integers for
storing amounts and combines them with a [Token] struct describing the asset.

# Features

  - Immutable quantities, ensuring safe usage across multiple goroutines
  - Tokens with any number of decimals from 0 to 255
  - Lossless storage of amounts in raw units, however large
  - Arithmetic and comparison operations on quantities
  - Conversion of quantities between tokens using rates
  - Token lists in JSON and YAML, and database codecs for quantities

# Representation

The package consists of two main structs: Quantity and Token.
A Token holds a symbol, an address, and a number of decimals.
A Quantity holds a Token and an integer number of raw units, the smallest
indivisible units of the token.
One whole token is 10^decimals raw units.

# Construction

Quantities are constructed in one of two modes:

  - Without decimals, the amount is taken as a whole number of raw units.
    An amount with a non-zero fractional part is rejected with [ErrInvalidInput].
  - With decimals, the amount is taken in whole tokens and is scaled by
    10^decimals. An amount with more digits after the decimal point than
    the token has decimals is rejected with [ErrPrecisionOverflow].

For a token with 6 decimals, "10" without decimals and "0.00001" with decimals
are the same quantity of 10 raw units, displayed as 0.00001.

# Operations

Arithmetic operations work on raw units and return plain decimals rather than
quantities, leaving it to the caller to turn the result back into a quantity
with [NewQuantityFromRaw].
Division fails with [ErrUnderflow] if the quotient is not greater than 1.

Comparison operations work on amounts in whole tokens, so quantities of tokens
with different decimals compare by magnitude.

# Errors

Errors may occur during construction of Token and Quantity values and during
division.
All errors wrap one of the exported Err values and can be tested with [errors.Is].
*/
package asset
