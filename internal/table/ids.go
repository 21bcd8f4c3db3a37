package table

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// decodeIDs evaluates an 'ids' expression into coin type identifiers. The
// expression must be a static list of whole numbers in the uint32 range.
func decodeIDs(expr hcl.Expression) ([]uint32, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	val, valDiags := expr.Value(nil)
	diags = append(diags, valDiags...)
	if valDiags.HasErrors() {
		return nil, diags
	}

	ty := val.Type()
	if val.IsNull() || !val.IsWhollyKnown() || !(ty.IsTupleType() || ty.IsListType()) {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid ids",
			Detail:   fmt.Sprintf("The 'ids' attribute must be a list of coin type numbers, got %s.", ty.FriendlyName()),
			Subject:  expr.Range().Ptr(),
		})
		return nil, diags
	}

	ids := make([]uint32, 0, val.LengthInt())
	for i, it := 0, val.ElementIterator(); it.Next(); i++ {
		_, elem := it.Element()

		if elem.IsNull() || !elem.Type().Equals(cty.Number) {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid coin type",
				Detail:   fmt.Sprintf("Element %d of 'ids' must be a number, got %s.", i, elem.Type().FriendlyName()),
				Subject:  expr.Range().Ptr(),
			})
			continue
		}

		var id uint32
		if err := gocty.FromCtyValue(elem, &id); err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid coin type",
				Detail:   fmt.Sprintf("Element %d of 'ids' is not a valid coin type: %s.", i, err),
				Subject:  expr.Range().Ptr(),
			})
			continue
		}
		ids = append(ids, id)
	}

	return ids, diags
}
