// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package coin holds the SLIP-0044 coin type registry: the catalog of coin
// records keyed by numeric coin type and name, and the symbol index derived
// from it.
//
// # Core Concepts
//
//   - Entry: the raw, author-supplied description of one coin. Entries are
//     data, produced by a table loader or written directly in Go.
//
//   - Coin: the immutable record built from an Entry. A coin may own several
//     coin type identifiers when the standard assigned more than one number to
//     the same name and symbol. The first identifier is the primary one.
//
//   - Symbol: a ticker claimed in the symbol index. When two coins share a
//     ticker, only the coin with the lower primary identifier claims it; the
//     other keeps the ticker as DuplicateSymbol metadata and cannot be found by
//     it.
//
// A Registry is built once by New and never changes afterwards, so it can be
// shared between goroutines without locking. Construction either succeeds
// completely or returns a *MalformedEntryListError describing every problem
// in the entry list.
package coin
