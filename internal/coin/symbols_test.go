package coin

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collisionEntries() []Entry {
	return []Entry{
		{IDs: []uint32{2}, Name: "Later", Symbol: "ABC", DuplicateSymbol: "ABC"},
		{IDs: []uint32{0}, Name: "Earlier", Symbol: "ABC"},
		{IDs: []uint32{5}, Name: "Latest", DuplicateSymbol: "ABC"},
	}
}

func TestSymbolIndex_LowestIdentifierWins(t *testing.T) {
	ctx, logs := newTestContext(t)
	r, err := New(ctx, collisionEntries())
	require.NoError(t, err)

	earlier, err := r.ByID(0)
	require.NoError(t, err)
	later, err := r.ByID(2)
	require.NoError(t, err)
	latest, err := r.ByID(5)
	require.NoError(t, err)

	sym, err := r.SymbolOf(earlier)
	require.NoError(t, err)
	assert.Equal(t, Symbol("ABC"), sym)

	for _, c := range []*Coin{later, latest} {
		_, err = r.SymbolOf(c)
		assert.ErrorIs(t, err, ErrNoSymbol, "coin %q", c.Name())
		dup, ok := c.DuplicateSymbol()
		assert.True(t, ok)
		assert.Equal(t, "ABC", dup)
	}

	claimant, err := r.BySymbol("ABC")
	require.NoError(t, err)
	assert.Same(t, earlier, claimant)

	assert.Equal(t, []Symbol{"ABC"}, r.Symbols())
	assert.Contains(t, logs.String(), "Symbol collision resolved.")
}

func TestSymbolOf_RoundTrip(t *testing.T) {
	r := mustNew(t, []Entry{
		{IDs: []uint32{0}, Name: "Bitcoin", Symbol: "BTC"},
		{IDs: []uint32{2}, Name: "Litecoin", Symbol: "LTC"},
		{IDs: []uint32{60}, Name: "Ether", Symbol: "ETH"},
		{IDs: []uint32{1}, Name: "Testnet (all coins)"},
	})

	bound := 0
	for _, c := range r.Coins() {
		sym, err := r.SymbolOf(c)
		if err != nil {
			assert.ErrorIs(t, err, ErrNoSymbol)
			continue
		}
		bound++
		got, err := r.BySymbol(sym)
		require.NoError(t, err)
		assert.Same(t, c, got)
	}
	assert.Equal(t, 3, bound)
}

func TestSymbolOf_ForeignCoin(t *testing.T) {
	r := mustNew(t, sampleEntries())
	other := mustNew(t, sampleEntries())

	foreign, err := other.ByID(0)
	require.NoError(t, err)

	_, err = r.SymbolOf(foreign)
	assert.ErrorIs(t, err, ErrNoSymbol)

	_, err = r.SymbolOf(nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSymbolByID(t *testing.T) {
	r := mustNew(t, sampleEntries())

	testCases := []struct {
		name    string
		id      uint32
		want    Symbol
		wantErr error
	}{
		{name: "bound symbol", id: 0, want: "BTC"},
		{name: "secondary identifier", id: 500, want: "BTC"},
		{name: "coin without symbol", id: 1, wantErr: ErrNoSymbol},
		{name: "unknown identifier", id: 2, wantErr: ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.SymbolByID(tc.id)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseSymbol(t *testing.T) {
	r := mustNew(t, sampleEntries())

	sym, err := r.ParseSymbol("BTC")
	require.NoError(t, err)
	assert.Equal(t, Symbol("BTC"), sym)

	for _, s := range []string{"btc", "TBC", "TSNT", "", "B TC", "1BTC"} {
		_, err := r.ParseSymbol(s)
		assert.ErrorIs(t, err, ErrNotFound, "symbol %q", s)
	}
}

func TestValidSymbol(t *testing.T) {
	valid := []string{"BTC", "tBTC", "_X", "A1"}
	invalid := []string{"", "1INCH", "BTC-X", "$BTC", "B C"}

	for _, s := range valid {
		assert.True(t, ValidSymbol(s), "%q should be valid", s)
	}
	for _, s := range invalid {
		assert.False(t, ValidSymbol(s), "%q should be invalid", s)
	}
}

func TestRegistry_ConcurrentReaders(t *testing.T) {
	r := mustNew(t, collisionEntries())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		_ = i
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_ = i
				c, err := r.BySymbol("ABC")
				if !assert.NoError(t, err) {
					return
				}
				assert.Equal(t, uint32(0), c.ID())
				_, err = r.SymbolByID(2)
				assert.ErrorIs(t, err, ErrNoSymbol)
			}
		}()
	}
	wg.Wait()
}

func TestRegistry_Idempotent(t *testing.T) {
	r := mustNew(t, collisionEntries())

	first, firstErr := r.SymbolByID(5)
	require.Error(t, firstErr)
	for i := 0; i < 10; i++ {
		_ = i
		got, err := r.SymbolByID(5)
		assert.Equal(t, first, got)
		assert.EqualError(t, err, firstErr.Error())
	}
}
