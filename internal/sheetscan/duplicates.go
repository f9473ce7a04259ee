package sheetscan

import (
	"context"
	"strings"

	"github.com/EzequielOmarArraygada/backoffice/internal/rowstore"
)

// OrderExists reports whether an order number is already present in the
// sheet's Order Number column. Comparison trims and ignores case, since
// order numbers arrive pasted from other systems. An empty sheet or a sheet
// without the column reports false.
func OrderExists(ctx context.Context, store rowstore.Store, sheet, orderNumber string) (bool, error) {
	rows, err := store.GetAllRows(ctx, sheet)
	if err != nil {
		return false, err
	}
	if len(rows) < 2 {
		return false, nil
	}
	col := rowstore.ColumnIndex(rows[0], colOrderNumber)
	if col < 0 {
		return false, nil
	}
	want := strings.ToLower(strings.TrimSpace(orderNumber))
	for _, row := range rows[1:] {
		if strings.ToLower(strings.TrimSpace(rowstore.Cell(row, col))) == want {
			return true, nil
		}
	}
	return false, nil
}
