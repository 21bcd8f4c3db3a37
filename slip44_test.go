package slip44_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/slip44"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// knownKeys lists every coin of the embedded table. A coin added to or
// removed from the table must be reflected here.
var knownKeys = []string{
	"Bitcoin", "Testnet", "Litecoin", "Dogecoin", "Reddcoin", "Dash", "Peercoin",
	"Namecoin", "Feathercoin", "Counterparty", "Blackcoin", "NuShares", "NuBits",
	"Mazacoin", "Viacoin", "ClearingHouse", "Rubycoin", "Groestlcoin", "Digitalcoin",
	"Cannacoin", "DigiByte", "OpenAssets", "Monacoin", "Clams", "Primecoin", "Neoscoin",
	"Jumbucks", "ZiftrCOIN", "Vertcoin", "NXT", "Burst", "MonetaryUnit", "Zoom",
	"Vpncoin", "CanadaECoin", "ShadowCash", "ParkByte", "Pandacoin", "StartCOIN", "MOIN",
	"Expanse", "Einsteinium", "Decred", "NEM", "Ether", "EtherClassic", "ICON", "Verge",
	"Stratis", "ARK", "Atom", "Horizen", "Monero", "Zcash", "Lisk", "Steem", "Firo",
	"Komodo", "XRP", "BitcoinCash", "StellarLumens", "BitcoinGold", "Nano", "Ravencoin",
	"EOS", "Tron", "BitcoinSV", "Algorand", "Capricoin", "IoTeX", "Zilliqa", "Terra",
	"Credits", "CPChain", "Polkadot", "NEAR", "Aion", "Kusama", "Aeternity", "Filecoin",
	"Theta", "Solana", "Secret", "Aptos", "BinanceCoin", "Sui", "VeChain", "Tezos",
	"Cardano", "Qtum", "Stacks", "Avalanche", "Celo",
}

func TestDefault_CoversAllKnownKeys(t *testing.T) {
	r, err := slip44.Default()
	require.NoError(t, err)

	var keys []string
	for _, c := range r.Coins() {
		keys = append(keys, c.Key())
	}
	assert.Equal(t, knownKeys, keys)
}

func TestDefault_EveryCoinIsReachable(t *testing.T) {
	r := slip44.MustDefault()

	for _, c := range r.Coins() {
		t.Run(c.Key(), func(t *testing.T) {
			for _, id := range c.IDs() {
				got, err := r.ByID(id)
				require.NoError(t, err)
				assert.Same(t, c, got)
			}
			assert.Equal(t, c.IDs()[0], c.ID())

			got, err := r.ByName(c.Name())
			require.NoError(t, err)
			assert.Same(t, c, got)

			got, err = r.ByKey(c.Key())
			require.NoError(t, err)
			assert.Same(t, c, got)

			sym, err := r.SymbolOf(c)
			if err != nil {
				assert.ErrorIs(t, err, slip44.ErrNoSymbol)
				return
			}
			got, err = r.BySymbol(sym)
			require.NoError(t, err)
			assert.Same(t, c, got)
		})
	}
}

func TestDefault_IsShared(t *testing.T) {
	first, err := slip44.Default()
	require.NoError(t, err)
	second, err := slip44.Default()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestPackageLevelConversions(t *testing.T) {
	btc, err := slip44.ByID(0)
	require.NoError(t, err)
	assert.Equal(t, "Bitcoin", btc.String())
	assert.Equal(t, []uint32{0}, btc.IDs())
	link, ok := btc.Link()
	assert.True(t, ok)
	assert.Equal(t, "https://bitcoin.org/", link)

	sym, err := slip44.SymbolOf(btc)
	require.NoError(t, err)
	assert.Equal(t, slip44.Symbol("BTC"), sym)

	byName, err := slip44.ByName("Bitcoin")
	require.NoError(t, err)
	assert.Same(t, btc, byName)

	bySym, err := slip44.BySymbol("BTC")
	require.NoError(t, err)
	assert.Same(t, btc, bySym)

	parsed, err := slip44.ParseSymbol("ETH")
	require.NoError(t, err)
	eth, err := slip44.BySymbol(parsed)
	require.NoError(t, err)
	assert.Equal(t, uint32(60), eth.ID())

	bch, err := slip44.ByKey("BitcoinCash")
	require.NoError(t, err)
	assert.Equal(t, uint32(145), bch.ID())

	sym, err = slip44.SymbolByID(2)
	require.NoError(t, err)
	assert.Equal(t, slip44.Symbol("LTC"), sym)

	_, err = slip44.SymbolByID(1)
	assert.ErrorIs(t, err, slip44.ErrNoSymbol)

	_, err = slip44.ByID(2147483647)
	assert.ErrorIs(t, err, slip44.ErrNotFound)

	assert.NotEmpty(t, slip44.Coins())
	assert.Equal(t, slip44.Symbol("BTC"), slip44.Symbols()[0])
}

func TestDefault_MultipleIdentifiers(t *testing.T) {
	credits, err := slip44.ByName("Credits")
	require.NoError(t, err)

	assert.Equal(t, []uint32{334, 498}, credits.IDs())
	assert.Equal(t, uint32(334), credits.ID())

	alt, err := slip44.ByID(498)
	require.NoError(t, err)
	assert.Same(t, credits, alt)
}

func TestDefault_DuplicateSymbol(t *testing.T) {
	capricoin, err := slip44.ByKey("Capricoin")
	require.NoError(t, err)
	cpchain, err := slip44.ByKey("CPChain")
	require.NoError(t, err)
	require.Less(t, capricoin.ID(), cpchain.ID())

	claimant, err := slip44.BySymbol("CPC")
	require.NoError(t, err)
	assert.Same(t, capricoin, claimant)

	_, err = slip44.SymbolOf(cpchain)
	assert.ErrorIs(t, err, slip44.ErrNoSymbol)
	dup, ok := cpchain.DuplicateSymbol()
	assert.True(t, ok)
	assert.Equal(t, "CPC", dup)
}

func TestEmbedded_BuildsIndependentRegistry(t *testing.T) {
	r, err := slip44.Embedded(context.Background())
	require.NoError(t, err)

	assert.NotSame(t, slip44.MustDefault(), r)
	assert.Equal(t, slip44.MustDefault().Len(), r.Len())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coins.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
coin "Bitcoin" {
  ids    = [0, 500]
  name   = "Bitcoin by Satoshi"
  link   = "https://bitcoin.org"
  symbol = "BTC"
}

coin "Testnet" {
  ids              = [1]
  name             = "Testnet (all coins)"
  duplicate_symbol = "TSNT"
}
`), 0o644))

	r, err := slip44.Load(context.Background(), path)
	require.NoError(t, err)

	btc, err := r.ByID(500)
	require.NoError(t, err)
	assert.Equal(t, "Bitcoin by Satoshi", btc.Name())

	_, err = r.BySymbol("TSNT")
	assert.ErrorIs(t, err, slip44.ErrNotFound)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coins.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
coin "First" {
  ids    = [0]
  name   = "First"
  symbol = "ABC"
}

coin "Second" {
  ids    = [2]
  name   = "Second"
  symbol = "ABC"
}
`), 0o644))

	_, err := slip44.Load(context.Background(), path)
	assert.ErrorIs(t, err, slip44.ErrMalformedEntryList)

	var malformed *slip44.MalformedEntryListError
	require.ErrorAs(t, err, &malformed)
	assert.Len(t, malformed.Problems, 1)
}
