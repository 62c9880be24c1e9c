package utils

import (
	"cafe_manager/model"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// BuildDailySalesXlsx renders the daily sales report as a spreadsheet.
func BuildDailySalesXlsx(cafeName string, report []model.PaymentSalesResponse) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Daily Sales"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"No", "Date", "Payments", "Total Amount"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}

	styleHeader, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4F46E5"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	f.SetCellStyle(sheetName, "A1", "D1", styleHeader)

	row := 2
	totalAmount := 0
	for i, r := range report {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.TotalQuantity)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.TotalAmount)
		totalAmount += r.TotalAmount
		row++
	}

	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), "Total")
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), totalAmount)

	f.SetColWidth(sheetName, "A", "A", 5)
	f.SetColWidth(sheetName, "B", "B", 15)
	f.SetColWidth(sheetName, "C", "D", 15)

	return f, nil
}
