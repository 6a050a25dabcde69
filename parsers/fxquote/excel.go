// excel.go serializes the merged tables into a three-sheet xlsx workbook.
// The two percent-derived Forward columns are written as live spreadsheet
// formulas rather than in-process values, so edits to the inputs keep the
// derived cells correct.

package fxquote

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/xuri/excelize/v2"
)

// Sheet names in the output workbook.
const (
	SheetForward     = "Forward"
	SheetSpot        = "Spot"
	SheetCentralBank = "CentralBank"
)

// WriteWorkbook builds the consolidated workbook and writes it to w in one
// pass. A failure mid-write leaves no guaranteed-valid output.
func WriteWorkbook(w io.Writer, forward ForwardTable, spot SpotTable, central CentralBankTable) error {
	f, err := buildWorkbook(forward, spot, central)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// SaveWorkbook writes the consolidated workbook to path.
func SaveWorkbook(path string, forward ForwardTable, spot SpotTable, central CentralBankTable) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer out.Close()
	return WriteWorkbook(out, forward, spot, central)
}

func buildWorkbook(forward ForwardTable, spot SpotTable, central CentralBankTable) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetForward); err != nil {
		f.Close()
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}
	for _, name := range []string{SheetSpot, SheetCentralBank} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	st, err := newSheetStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	writeHeader(f, st, SheetForward, ForwardColumns)
	writeHeader(f, st, SheetSpot, SpotColumns)
	writeHeader(f, st, SheetCentralBank, CentralBankColumns)

	if err := writeForwardSheet(f, st, forward); err != nil {
		f.Close()
		return nil, err
	}
	writeSpotSheet(f, st, spot)
	writeCentralSheet(f, st, central)

	return f, nil
}

// sheetStyles holds the style IDs reused across all rows.
type sheetStyles struct {
	header  int
	date    int
	percent int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	var st sheetStyles
	var err error

	st.header, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return st, fmt.Errorf("header style: %w", err)
	}

	dateFmt := "dd/mm/yyyy"
	st.date, err = f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return st, fmt.Errorf("date style: %w", err)
	}

	pctFmt := "0.000%"
	st.percent, err = f.NewStyle(&excelize.Style{CustomNumFmt: &pctFmt})
	if err != nil {
		return st, fmt.Errorf("percent style: %w", err)
	}
	return st, nil
}

func writeHeader(f *excelize.File, st sheetStyles, sheet string, columns []string) {
	for i, name := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
		f.SetCellStyle(sheet, cell, cell, st.header)
	}
}

// setDateCell writes a native date cell (not a string) so spreadsheet date
// arithmetic keeps working, and formats it dd/mm/yyyy. Zero times stay
// empty.
func setDateCell(f *excelize.File, st sheetStyles, sheet string, col, row int, d time.Time) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	if !d.IsZero() {
		f.SetCellValue(sheet, cell, d)
	}
	f.SetCellStyle(sheet, cell, cell, st.date)
}

// setRateCell writes an optional integer rate, leaving the cell empty for
// nil rather than fabricating a zero.
func setRateCell(f *excelize.File, sheet string, col, row int, v *int) {
	if v == nil {
		return
	}
	cell, _ := excelize.CoordinatesToCellName(col, row)
	f.SetCellValue(sheet, cell, *v)
}

// Forward sheet column positions (1-based), fixed by ForwardColumns.
const (
	fwdColNo = iota + 1
	fwdColSide
	fwdColBank
	fwdColQuoting
	fwdColTrading
	fwdColValue
	fwdColSpot
	fwdColGap
	fwdColForward
	fwdColTermDays
	fwdColPctFwd
	fwdColDiff
	fwdColTermLookup
)

func writeForwardSheet(f *excelize.File, st sheetStyles, rows ForwardTable) error {
	for i, q := range rows {
		r := i + 2
		cell := func(col int) string {
			c, _ := excelize.CoordinatesToCellName(col, r)
			return c
		}

		f.SetCellValue(SheetForward, cell(fwdColNo), q.No)
		f.SetCellValue(SheetForward, cell(fwdColSide), string(q.Side))
		f.SetCellValue(SheetForward, cell(fwdColBank), q.Bank)
		setDateCell(f, st, SheetForward, fwdColQuoting, r, q.QuotingDate)
		setDateCell(f, st, SheetForward, fwdColTrading, r, q.TradingDate)
		setDateCell(f, st, SheetForward, fwdColValue, r, q.ValueDate)
		setRateCell(f, SheetForward, fwdColSpot, r, q.Spot)
		if q.GapPct != nil {
			f.SetCellValue(SheetForward, cell(fwdColGap), *q.GapPct)
		}
		setRateCell(f, SheetForward, fwdColForward, r, q.Forward)
		f.SetCellValue(SheetForward, cell(fwdColTermDays), q.TermDays)

		// % forward (cal) = annualized premium of forward over spot,
		// guarded so a missing or zero spot yields 0 instead of an error.
		pctFormula := fmt.Sprintf("IFERROR((%s-%s)*365/(%s*%s),0)",
			cell(fwdColForward), cell(fwdColSpot), cell(fwdColSpot), cell(fwdColTermDays))
		if err := f.SetCellFormula(SheetForward, cell(fwdColPctFwd), pctFormula); err != nil {
			return fmt.Errorf("%% forward formula row %d: %w", r, err)
		}

		diffFormula := fmt.Sprintf("IFERROR(%s-%s/100,0)", cell(fwdColPctFwd), cell(fwdColGap))
		if err := f.SetCellFormula(SheetForward, cell(fwdColDiff), diffFormula); err != nil {
			return fmt.Errorf("diff formula row %d: %w", r, err)
		}

		// Live recomputation of the precomputed TermMonths value; the two
		// must agree under the 30/360 basis YEARFRAC defaults to.
		lookupFormula := fmt.Sprintf("ROUND(YEARFRAC(%s,%s)*12,0)",
			cell(fwdColTrading), cell(fwdColValue))
		if err := f.SetCellFormula(SheetForward, cell(fwdColTermLookup), lookupFormula); err != nil {
			return fmt.Errorf("term lookup formula row %d: %w", r, err)
		}

		f.SetCellStyle(SheetForward, cell(fwdColPctFwd), cell(fwdColDiff), st.percent)
	}
	return nil
}

func writeSpotSheet(f *excelize.File, st sheetStyles, rows SpotTable) {
	for i, q := range rows {
		r := i + 2
		cell := func(col int) string {
			c, _ := excelize.CoordinatesToCellName(col, r)
			return c
		}
		f.SetCellValue(SheetSpot, cell(1), q.No)
		f.SetCellValue(SheetSpot, cell(2), string(q.Side))
		f.SetCellValue(SheetSpot, cell(3), q.Bank)
		setDateCell(f, st, SheetSpot, 4, r, q.QuotingDate)
		setRateCell(f, SheetSpot, 5, r, q.WeekLow)
		setRateCell(f, SheetSpot, 6, r, q.WeekHigh)
		setRateCell(f, SheetSpot, 7, r, q.FridayClose)
	}
}

func writeCentralSheet(f *excelize.File, st sheetStyles, rows CentralBankTable) {
	for i, q := range rows {
		r := i + 2
		cell := func(col int) string {
			c, _ := excelize.CoordinatesToCellName(col, r)
			return c
		}
		f.SetCellValue(SheetCentralBank, cell(1), q.No)
		f.SetCellValue(SheetCentralBank, cell(2), q.Bank)
		setDateCell(f, st, SheetCentralBank, 3, r, q.QuotingDate)
		setRateCell(f, SheetCentralBank, 4, r, q.Rate)
	}
}
