package reports

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"timesheet.app/timesheet/timesheet/core"
)

const (
	entriesSheet = "Timesheet"
	weeksSheet   = "Settimane"
	XLSXMime     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// WriteXLSX writes one sheet with every entry and one with the week totals.
func WriteXLSX(w io.Writer, rows []Row, weeks []core.WeekGroup) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", entriesSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(weeksSheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := writeRow(f, entriesSheet, 1, toCells(header)); err != nil {
		return err
	}
	for i, r := range rows {
		cells := toCells(r.strings())
		cells[4] = r.Hours
		if err := writeRow(f, entriesSheet, i+2, cells); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(entriesSheet, "A1", "H1", bold); err != nil {
		return err
	}

	if err := writeRow(f, weeksSheet, 1, []interface{}{"Dipendente", "Dal", "Al", "Stato", "Ore totali", "Righe"}); err != nil {
		return err
	}
	for i, g := range weeks {
		if err := writeRow(f, weeksSheet, i+2, []interface{}{
			g.EmployeeName, g.WeekStart, g.WeekEnd, string(g.Status), g.TotalHours, len(g.Entries),
		}); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(weeksSheet, "A1", "F1", bold); err != nil {
		return err
	}

	if err := f.SetColWidth(entriesSheet, "B", "D", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(entriesSheet, "F", "F", 40); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &cells)
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
