package asset

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

// Address lengths, in bytes, of the supported chains.
const (
	evmAddressLen    = 20
	solanaAddressLen = 32
)

// AddressBytes decodes the address of the token.
// The following formats are supported:
//
//	0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48     EVM, 20 bytes, hex with 0x prefix
//	EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v   Solana, 32 bytes, base58
//
// Hex addresses are accepted in any case; the EIP-55 checksum is not verified.
//
// AddressBytes returns an error if the address is in neither format.
func (t Token) AddressBytes() ([]byte, error) {
	b, err := decodeAddress(t.Address())
	if err != nil {
		return nil, fmt.Errorf("decoding address of %v: %w", t, err)
	}
	return b, nil
}

func decodeAddress(addr string) ([]byte, error) {
	if len(addr) >= 2 && strings.EqualFold(addr[:2], "0x") {
		b, err := hex.DecodeString(addr[2:])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidAddress, addr, err)
		}
		if len(b) != evmAddressLen {
			return nil, fmt.Errorf("%w: %q has %v bytes, want %v", ErrInvalidAddress, addr, len(b), evmAddressLen)
		}
		return b, nil
	}
	b, err := base58.Decode(addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidAddress, addr, err)
	}
	if len(b) != solanaAddressLen {
		return nil, fmt.Errorf("%w: %q has %v bytes, want %v", ErrInvalidAddress, addr, len(b), solanaAddressLen)
	}
	return b, nil
}
