package table

import (
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/slip44/internal/coin"
	"github.com/zclconf/go-cty/cty"
)

// Write renders entries as a formatted table that Loader reads back into the
// same entries.
func Write(w io.Writer, entries []coin.Entry) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	for i, e := range entries {
		if i > 0 {
			body.AppendNewline()
		}
		block := body.AppendNewBlock("coin", []string{e.Key}).Body()

		ids := make([]cty.Value, 0, len(e.IDs))
		for _, id := range e.IDs {
			ids = append(ids, cty.NumberUIntVal(uint64(id)))
		}
		if len(ids) == 0 {
			block.SetAttributeValue("ids", cty.EmptyTupleVal)
		} else {
			block.SetAttributeValue("ids", cty.TupleVal(ids))
		}

		block.SetAttributeValue("name", cty.StringVal(e.Name))
		setOptional(block, "link", e.Link)
		setOptional(block, "symbol", e.Symbol)
		setOptional(block, "duplicate_symbol", e.DuplicateSymbol)
	}

	_, err := w.Write(hclwrite.Format(f.Bytes()))
	return err
}

func setOptional(body *hclwrite.Body, name, value string) {
	if value != "" {
		body.SetAttributeValue(name, cty.StringVal(value))
	}
}
