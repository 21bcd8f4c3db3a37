// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Entry, the raw input of the registry, and Coin, the
// immutable record the registry builds from it.
//
// Why keep Entry and Coin apart?
//
// An Entry is whatever the table author wrote, including mistakes. A Coin only
// exists once its Entry passed validation against every other entry, so
// holding a *Coin is proof that its identifiers and name are unique and that
// its symbol metadata agrees with the symbol index.
package coin

import (
	"regexp"
	"slices"
)

// Entry is a single author-supplied coin description. Empty strings mean the
// optional field is absent.
type Entry struct {
	// Key is an identifier-style handle for the coin, e.g. "Bitcoin". Optional.
	Key string
	// IDs are the coin type identifiers, strictly ascending.
	IDs             []uint32
	Name            string
	Link            string
	Symbol          string
	DuplicateSymbol string
}

// Symbol is a ticker claimed in the symbol index.
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

// symbolRegex matches identifier tokens. Tickers double as identifiers in
// generated code, so "1INCH" style tickers are recorded as DuplicateSymbol.
var symbolRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidSymbol reports whether s has the syntax of a symbol token.
func ValidSymbol(s string) bool {
	return symbolRegex.MatchString(s)
}

// Coin is an immutable coin record owned by a Registry.
type Coin struct {
	key             string
	ids             []uint32
	name            string
	link            string
	symbol          Symbol
	duplicateSymbol string
}

func newCoin(e Entry) *Coin {
	return &Coin{
		key:             e.Key,
		ids:             slices.Clone(e.IDs),
		name:            e.Name,
		link:            e.Link,
		symbol:          Symbol(e.Symbol),
		duplicateSymbol: e.DuplicateSymbol,
	}
}

// ID returns the primary coin type identifier, the lowest of IDs.
func (c *Coin) ID() uint32 {
	return c.ids[0]
}

// IDs returns a copy of every coin type identifier in original order.
func (c *Coin) IDs() []uint32 {
	return slices.Clone(c.ids)
}

// Key returns the identifier-style handle of the coin, or "" if none was set.
func (c *Coin) Key() string {
	return c.key
}

// Name returns the unedited coin name.
func (c *Coin) Name() string {
	return c.name
}

// Link returns the reference URL of the coin, if any.
func (c *Coin) Link() (string, bool) {
	return c.link, c.link != ""
}

// DuplicateSymbol returns the ticker this coin would have had if a coin with a
// lower identifier had not claimed it first. It is informational only.
func (c *Coin) DuplicateSymbol() (string, bool) {
	return c.duplicateSymbol, c.duplicateSymbol != ""
}

// String renders the coin as its name.
func (c *Coin) String() string {
	return c.name
}

// Entry converts the coin back into the entry it was built from, after
// symbol normalization.
func (c *Coin) Entry() Entry {
	return Entry{
		Key:             c.key,
		IDs:             slices.Clone(c.ids),
		Name:            c.name,
		Link:            c.link,
		Symbol:          string(c.symbol),
		DuplicateSymbol: c.duplicateSymbol,
	}
}
