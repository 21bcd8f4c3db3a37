// Package slip44 maps SLIP-0044 coin types to coin metadata and back.
//
// Coin type identifiers, coin names and ticker symbols can each be resolved
// into a Coin, and a Coin converted into its identifiers, name or Symbol:
//
//	btc, _ := slip44.ByID(0)           // Coin "Bitcoin"
//	btc.ID()                           // 0
//	btc.IDs()                          // [0]
//	sym, _ := slip44.SymbolOf(btc)     // "BTC"
//	eth, _ := slip44.BySymbol("ETH")   // Coin "Ether"
//	_, err := slip44.SymbolByID(1)     // errors.Is(err, slip44.ErrNoSymbol)
//
// The package level functions use the table embedded in the package, built
// once on first use. New builds a registry from any other entry list.
package slip44
