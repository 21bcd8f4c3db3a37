package app

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/specialistvlad/slip44"
)

// coinView is the rendered form of a coin.
type coinView struct {
	Key             string   `json:"key,omitempty"`
	IDs             []uint32 `json:"ids"`
	Name            string   `json:"name"`
	Link            string   `json:"link,omitempty"`
	Symbol          string   `json:"symbol,omitempty"`
	DuplicateSymbol string   `json:"duplicate_symbol,omitempty"`
}

func (a *App) view(c *slip44.Coin) coinView {
	v := coinView{
		Key:  c.Key(),
		IDs:  c.IDs(),
		Name: c.Name(),
	}
	v.Link, _ = c.Link()
	v.DuplicateSymbol, _ = c.DuplicateSymbol()
	if sym, err := a.registry.SymbolOf(c); err == nil {
		v.Symbol = sym.String()
	}
	return v
}

func (a *App) renderCoin(c *slip44.Coin) error {
	v := a.view(c)
	if a.config.Output == "json" {
		return a.writeJSON(v)
	}

	tw := tabwriter.NewWriter(a.outW, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "name:\t%s\n", v.Name)
	fmt.Fprintf(tw, "key:\t%s\n", dash(v.Key))
	fmt.Fprintf(tw, "ids:\t%s\n", joinIDs(v.IDs))
	fmt.Fprintf(tw, "link:\t%s\n", dash(v.Link))
	fmt.Fprintf(tw, "symbol:\t%s\n", dash(v.Symbol))
	fmt.Fprintf(tw, "duplicate_symbol:\t%s\n", dash(v.DuplicateSymbol))
	return tw.Flush()
}

func (a *App) renderList(coins []*slip44.Coin) error {
	if a.config.Output == "json" {
		views := make([]coinView, 0, len(coins))
		for _, c := range coins {
			views = append(views, a.view(c))
		}
		return a.writeJSON(views)
	}

	tw := tabwriter.NewWriter(a.outW, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "IDS\tSYMBOL\tNAME")
	for _, c := range coins {
		v := a.view(c)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", joinIDs(v.IDs), dash(v.Symbol), v.Name)
	}
	return tw.Flush()
}

func (a *App) writeJSON(v any) error {
	enc := json.NewEncoder(a.outW)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func joinIDs(ids []uint32) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ",")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
