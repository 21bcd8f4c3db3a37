package slip44

import (
	"context"
	_ "embed"
	"sync"

	"github.com/specialistvlad/slip44/internal/coin"
	"github.com/specialistvlad/slip44/internal/table"
)

//go:embed coins.hcl
var coinsHCL []byte

// TableName is the file name diagnostics use for the embedded table.
const TableName = "coins.hcl"

type (
	// Coin is an immutable coin record.
	Coin = coin.Coin
	// Symbol is a ticker claimed by exactly one coin.
	Symbol = coin.Symbol
	// Entry is the raw description of a coin used to build a Registry.
	Entry = coin.Entry
	// Registry is an immutable set of coins with its symbol index.
	Registry = coin.Registry
	// MalformedEntryListError lists every problem found in an entry list.
	MalformedEntryListError = coin.MalformedEntryListError
)

// Errors returned by lookups and by registry construction. Match them with
// errors.Is.
var (
	ErrNotFound           = coin.ErrNotFound
	ErrNoSymbol           = coin.ErrNoSymbol
	ErrMalformedEntryList = coin.ErrMalformedEntryList
)

// New builds a registry from entries. See coin.New for the validation rules.
func New(ctx context.Context, entries []Entry) (*Registry, error) {
	return coin.New(ctx, entries)
}

// Load builds a registry from HCL table files or directories.
func Load(ctx context.Context, paths ...string) (*Registry, error) {
	entries, err := table.NewLoader().Load(ctx, paths...)
	if err != nil {
		return nil, err
	}
	return coin.New(ctx, entries)
}

// Embedded builds a fresh registry from the embedded table.
func Embedded(ctx context.Context) (*Registry, error) {
	entries, err := table.NewLoader().Parse(ctx, coinsHCL, TableName)
	if err != nil {
		return nil, err
	}
	return coin.New(ctx, entries)
}

var defaultRegistry = sync.OnceValues(func() (*Registry, error) {
	return Embedded(context.Background())
})

// Default returns the registry built from the embedded table. It is built on
// the first call; every later call returns the same registry.
func Default() (*Registry, error) {
	return defaultRegistry()
}

// MustDefault is like Default but panics if the embedded table is malformed.
func MustDefault() *Registry {
	r, err := Default()
	if err != nil {
		panic(err)
	}
	return r
}

// ByID returns the coin owning the coin type id.
func ByID(id uint32) (*Coin, error) {
	return MustDefault().ByID(id)
}

// ByName returns the coin with exactly this name.
func ByName(name string) (*Coin, error) {
	return MustDefault().ByName(name)
}

// ByKey returns the coin with this identifier-style key, e.g. "BitcoinCash".
func ByKey(key string) (*Coin, error) {
	return MustDefault().ByKey(key)
}

// BySymbol returns the coin that claimed sym.
func BySymbol(sym Symbol) (*Coin, error) {
	return MustDefault().BySymbol(sym)
}

// ParseSymbol resolves the text form of a ticker.
func ParseSymbol(s string) (Symbol, error) {
	return MustDefault().ParseSymbol(s)
}

// SymbolOf returns the symbol bound to c.
func SymbolOf(c *Coin) (Symbol, error) {
	return MustDefault().SymbolOf(c)
}

// SymbolByID returns the symbol of the coin owning id.
func SymbolByID(id uint32) (Symbol, error) {
	return MustDefault().SymbolByID(id)
}

// Coins returns every coin of the embedded table in table order.
func Coins() []*Coin {
	return MustDefault().Coins()
}

// Symbols returns every claimed symbol of the embedded table.
func Symbols() []Symbol {
	return MustDefault().Symbols()
}
