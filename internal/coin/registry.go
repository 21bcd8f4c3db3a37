package coin

import (
	"context"
	"fmt"
	"slices"

	"github.com/specialistvlad/slip44/internal/ctxlog"
)

// Registry is the immutable catalog of coins together with its symbol index.
// The zero value is not usable; build one with New.
type Registry struct {
	coins  []*Coin
	byID   map[uint32]*Coin
	byName map[string]*Coin
	byKey  map[string]*Coin

	symbols map[Symbol]*Coin
	claimed []Symbol // ascending claimant id
}

// New builds a registry from entries, preserving their order. Every entry is
// checked against every other before any coin becomes reachable: if anything
// is wrong the result is a *MalformedEntryListError and no registry.
func New(ctx context.Context, entries []Entry) (*Registry, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building coin registry.", "entries", len(entries))

	r := &Registry{
		coins:   make([]*Coin, 0, len(entries)),
		byID:    make(map[uint32]*Coin, len(entries)),
		byName:  make(map[string]*Coin, len(entries)),
		byKey:   make(map[string]*Coin, len(entries)),
		symbols: make(map[Symbol]*Coin, len(entries)),
	}

	var problems []string
	for i, e := range entries {
		problems = append(problems, r.addEntry(i, e)...)
	}
	problems = append(problems, r.buildSymbolIndex(logger)...)

	if len(problems) > 0 {
		logger.Debug("Coin registry rejected.", "problems", len(problems))
		return nil, &MalformedEntryListError{Problems: problems}
	}

	logger.Debug("Coin registry built.", "coins", len(r.coins), "identifiers", len(r.byID), "symbols", len(r.symbols))
	return r, nil
}

// addEntry registers a single entry in the catalog and returns the problems
// found with it.
func (r *Registry) addEntry(i int, e Entry) []string {
	var problems []string
	label := fmt.Sprintf("entry %d (%q)", i, e.Name)

	if len(e.IDs) == 0 {
		return append(problems, label+": at least one coin type identifier is required")
	}

	c := newCoin(e)
	r.coins = append(r.coins, c)

	for j, id := range c.ids {
		if j > 0 && id <= c.ids[j-1] {
			problems = append(problems, fmt.Sprintf("%s: identifiers must be strictly ascending, got %d after %d", label, id, c.ids[j-1]))
			continue
		}
		if owner, exists := r.byID[id]; exists {
			problems = append(problems, fmt.Sprintf("%s: coin type %d is already assigned to %q", label, id, owner.name))
			continue
		}
		r.byID[id] = c
	}

	if c.name == "" {
		problems = append(problems, label+": name is required")
	} else if owner, exists := r.byName[c.name]; exists {
		problems = append(problems, fmt.Sprintf("%s: name is already used by coin type %d", label, owner.ID()))
	} else {
		r.byName[c.name] = c
	}

	if c.key != "" {
		if owner, exists := r.byKey[c.key]; exists {
			problems = append(problems, fmt.Sprintf("%s: key %q is already used by %q", label, c.key, owner.name))
		} else {
			r.byKey[c.key] = c
		}
	}

	if c.symbol != "" && !ValidSymbol(string(c.symbol)) {
		problems = append(problems, fmt.Sprintf("%s: symbol %q is not an identifier token", label, c.symbol))
	}

	return problems
}

// ByID returns the coin owning the coin type identifier id.
func (r *Registry) ByID(id uint32) (*Coin, error) {
	if c, ok := r.byID[id]; ok {
		return c, nil
	}
	return nil, notFound("coin type", id)
}

// ByName returns the coin whose name is exactly name. Matching is case
// sensitive and does no trimming.
func (r *Registry) ByName(name string) (*Coin, error) {
	if c, ok := r.byName[name]; ok {
		return c, nil
	}
	return nil, notFound("coin", fmt.Sprintf("%q", name))
}

// ByKey returns the coin with the identifier-style key, e.g. "Bitcoin".
func (r *Registry) ByKey(key string) (*Coin, error) {
	if c, ok := r.byKey[key]; ok {
		return c, nil
	}
	return nil, notFound("coin key", fmt.Sprintf("%q", key))
}

// Coins returns every coin in construction order.
func (r *Registry) Coins() []*Coin {
	return slices.Clone(r.coins)
}

// Len returns the number of coins in the registry.
func (r *Registry) Len() int {
	return len(r.coins)
}

// Entries returns the normalized entries of every coin in construction order.
// Building a new registry from them yields an equivalent registry.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, len(r.coins))
	for _, c := range r.coins {
		entries = append(entries, c.Entry())
	}
	return entries
}
