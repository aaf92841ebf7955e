// Package export renders the order collection for file download and parses
// exported files back for import.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/order"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/services"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/errs"
)

// csvHeader is the column layout the spreadsheet export has always used.
var csvHeader = []string{"Employee Name", "Food Item", "Quantity", "Price per Item", "Total Price", "Date"}

// JSON renders the snapshots as an indented JSON document.
func JSON(snapshots []order.Snapshot) ([]byte, error) {
	return json.MarshalIndent(snapshots, "", "  ")
}

// ParseJSON decodes an exported JSON document back into snapshots.
func ParseJSON(data []byte) ([]order.Snapshot, error) {
	var snapshots []order.Snapshot
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("import file", err)
	}
	return snapshots, nil
}

// CSV writes the flattened line items as a spreadsheet, one row per product
// with the order date attached.
func CSV(w io.Writer, items []services.LineItem) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, item := range items {
		row := []string{
			item.EmployeeName,
			item.FoodItem,
			strconv.Itoa(item.Quantity),
			item.PricePerItem.String(),
			item.TotalPrice.String(),
			item.OrderTimestamp.Format("2006-01-02"),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
