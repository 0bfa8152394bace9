package asset

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// TokenList is a collection of tokens, such as one loaded from a token list
// file shipped with a wallet or an indexer.
type TokenList []Token

// tokenListDoc accepts both a bare array of tokens and a document with
// a "tokens" field, as used by Uniswap-style token lists.
type tokenListDoc struct {
	Tokens TokenList `json:"tokens" yaml:"tokens"`
}

// ParseTokenListJSON parses a JSON token list.
// The input is either an array of tokens or an object with a "tokens" array:
//
//	[{"symbol": "USDC", "address": "0xa0b8...", "decimals": 6}]
//	{"name": "Default", "tokens": [{"symbol": "USDC", ...}]}
//
// ParseTokenListJSON returns an error if the JSON is malformed or if any
// token fails validation in [NewToken].
func ParseTokenListJSON(data []byte) (TokenList, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var l TokenList
		if err := json.Unmarshal(trimmed, &l); err != nil {
			return nil, fmt.Errorf("parsing token list: %w", err)
		}
		return l, nil
	}
	var doc tokenListDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing token list: %w", err)
	}
	return doc.Tokens, nil
}

// ParseTokenListYAML parses a YAML token list.
// The accepted shapes are the same as in [ParseTokenListJSON].
func ParseTokenListYAML(data []byte) (TokenList, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parsing token list: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}
	root := node.Content[0]
	if root.Kind == yaml.MappingNode {
		var doc tokenListDoc
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parsing token list: %w", err)
		}
		return doc.Tokens, nil
	}
	var l TokenList
	if err := root.Decode(&l); err != nil {
		return nil, fmt.Errorf("parsing token list: %w", err)
	}
	return l, nil
}

// Sort sorts the list in place by address, ignoring case.
// Tokens with the same address keep their relative order.
// See also function [CompareTokens].
func (l TokenList) Sort() {
	slices.SortStableFunc(l, CompareTokens)
}

// Lookup returns the first token with the given address, ignoring case.
func (l TokenList) Lookup(address string) (Token, bool) {
	for _, t := range l {
		if strings.EqualFold(t.Address(), address) {
			return t, true
		}
	}
	return Token{}, false
}

// Validate checks that every address in the list can be decoded and that
// no address appears twice.
// All problems are reported, joined with [errors.Join].
func (l TokenList) Validate() error {
	var errs []error
	seen := make(map[string]int, len(l))
	for i, t := range l {
		if _, err := t.AddressBytes(); err != nil {
			errs = append(errs, fmt.Errorf("token %v: %w", i, err))
		}
		key := strings.ToLower(t.Address())
		if j, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf("token %v: %w: %q duplicates token %v", i, ErrInvalidAddress, t.Address(), j))
			continue
		}
		seen[key] = i
	}
	return errors.Join(errs...)
}
