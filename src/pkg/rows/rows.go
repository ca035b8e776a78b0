// Package rows loads invoice/receipt input rows from spreadsheets (XLSX) or
// CSV files for the CLI entrypoint. Column order is free; the header row
// decides which column is which.
package rows

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"docmint/src/pkg/docgen"
)

// Expected sheet names inside a workbook. A missing sheet just means zero
// rows of that kind.
const (
	InvoiceSheet = "Invoices"
	ReceiptSheet = "Receipts"
)

/*
FromXLSX reads invoice rows from the "Invoices" sheet and receipt rows from
the "Receipts" sheet of one workbook. Each sheet starts with a header row
naming the columns (date, number, client, amount, description).
*/
func FromXLSX(path string) (invoices []docgen.Row, receipts []docgen.Row, e *xerr.Error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		e = xerr.NewError(err, "open XLSX workbook", path)
		return
	}
	defer workbook.Close()

	invoices, e = sheetRows(workbook, InvoiceSheet)
	if e != nil {
		return
	}
	receipts, e = sheetRows(workbook, ReceiptSheet)
	return
}

// FromCSV reads rows of a single kind from one headered CSV file.
func FromCSV(path string) (result []docgen.Row, e *xerr.Error) {
	file, err := os.Open(path)
	if err != nil {
		e = xerr.NewError(err, "open CSV file", path)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // ragged rows are normalized away later
	records, err := reader.ReadAll()
	if err != nil {
		e = xerr.NewError(err, "read CSV file", path)
		return
	}

	return mapRecords(records, path)
}

func sheetRows(workbook *excelize.File, sheet string) (result []docgen.Row, e *xerr.Error) {
	index, err := workbook.GetSheetIndex(sheet)
	if err != nil || index < 0 {
		tl.Log(tl.Info, palette.Cyan, "Workbook has no '%s' sheet, skipping", sheet)
		return nil, nil
	}

	records, err := workbook.GetRows(sheet)
	if err != nil {
		e = xerr.NewError(err, "read worksheet", sheet)
		return
	}
	return mapRecords(records, sheet)
}

// mapRecords turns a header row plus data rows into docgen rows. Unknown
// header names are ignored; missing cells stay empty.
func mapRecords(records [][]string, source string) (result []docgen.Row, e *xerr.Error) {
	if len(records) == 0 {
		return nil, nil
	}

	columns := map[string]int{}
	for index, name := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = index
	}
	for _, required := range []string{"date", "number", "amount"} {
		if _, ok := columns[required]; !ok {
			err := fmt.Errorf("header row has no %q column", required)
			e = xerr.NewError(err, "map tabular input", source)
			return
		}
	}

	for _, record := range records[1:] {
		result = append(result, docgen.Row{
			Date:        cell(record, columns, "date"),
			Number:      cell(record, columns, "number"),
			Client:      cell(record, columns, "client"),
			Amount:      cell(record, columns, "amount"),
			Description: cell(record, columns, "description"),
		})
	}

	tl.Log(tl.Info1, palette.Cyan, "Loaded '%d' rows from '%s'", len(result), source)
	return result, nil
}

func cell(record []string, columns map[string]int, field string) string {
	index, ok := columns[field]
	if !ok || index >= len(record) {
		return ""
	}
	return record[index]
}
