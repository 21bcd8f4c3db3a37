// Package table reads and writes the coin entry table. The table is authored
// in HCL as a sequence of labelled coin blocks:
//
//	coin "Bitcoin" {
//	  ids    = [0]
//	  name   = "Bitcoin"
//	  link   = "https://bitcoin.org/"
//	  symbol = "BTC"
//	}
//
//	coin "CPChain" {
//	  ids              = [337]
//	  name             = "CPChain"
//	  duplicate_symbol = "CPC"
//	}
//
// The label is the coin key. The package only turns text into coin.Entry
// values and back; uniqueness and symbol precedence are checked by coin.New.
package table
