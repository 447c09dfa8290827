// Package report renders the correlation state as an Excel workbook for
// reviewers.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"timetable-merge/internal/assemble"
	"timetable-merge/internal/correlate"
	"timetable-merge/internal/model"
)

// CorrelationsSheet is the name of the per-lesson sheet.
const CorrelationsSheet = "Correlations"

// UnresolvedMark prefixes grid labels without a bound NS lesson in day
// sheets.
const UnresolvedMark = "? "

var correlationHeader = []string{"Class", "Lesson ID", "Lesson", "Teacher", "Label", "Source"}

// Build creates a workbook with one row per NS lesson on the correlations
// sheet and one sheet per grid day. Day sheets have slots as rows and
// classes as columns.
func Build(pairs []*correlate.Correlation, days, slots int) (*excelize.File, error) {
	f := excelize.NewFile()

	idx, err := f.NewSheet(CorrelationsSheet)
	if err != nil {
		f.Close()
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := writeCorrelations(f, pairs, headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	for d := 0; d < days && d < len(model.Days); d++ {
		if err := writeDay(f, pairs, model.Days[d], slots, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// Write builds the workbook and writes it to w.
func Write(w io.Writer, pairs []*correlate.Correlation, days, slots int) error {
	f, err := Build(pairs, days, slots)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

// WriteFile builds the workbook and saves it at path.
func WriteFile(path string, pairs []*correlate.Correlation, days, slots int) error {
	f, err := Build(pairs, days, slots)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	return nil
}

func writeCorrelations(f *excelize.File, pairs []*correlate.Correlation, style int) error {
	sheet := CorrelationsSheet

	if err := f.SetSheetRow(sheet, "A1", &correlationHeader); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", cell(len(correlationHeader), 1), style); err != nil {
		return err
	}

	row := 2
	for _, pair := range pairs {
		for _, lesson := range pair.NS.Plan {
			values := []any{pair.Name(), lesson.ID, lesson.SubjectName(), lesson.TeacherName(), "", ""}
			if b, ok := pair.Binding(lesson); ok {
				values[4] = string(b.Label)
				values[5] = b.Source.String()
			}

			if err := f.SetSheetRow(sheet, cell(1, row), &values); err != nil {
				return err
			}
			row++
		}
	}

	widths := []float64{10, 12, 28, 24, 40, 12}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}

	return nil
}

func writeDay(f *excelize.File, pairs []*correlate.Correlation, day model.Day, slots int, style int) error {
	sheet := day.Name

	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	if err := f.SetCellValue(sheet, "A1", "Slot"); err != nil {
		return err
	}
	for s := 0; s < slots; s++ {
		if err := f.SetCellValue(sheet, cell(1, s+2), s+1); err != nil {
			return err
		}
	}

	wrap, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return err
	}

	for i, pair := range pairs {
		col := i + 2
		if err := f.SetCellValue(sheet, cell(col, 1), pair.Name()); err != nil {
			return err
		}

		for s, names := range dayColumn(pair, day, slots) {
			if len(names) == 0 {
				continue
			}
			if err := f.SetCellValue(sheet, cell(col, s+2), strings.Join(names, "\n")); err != nil {
				return err
			}
		}

		name, _ := excelize.ColumnNumberToName(col)
		if err := f.SetColWidth(sheet, name, name, 24); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell(col, 2), cell(col, slots+1), wrap); err != nil {
			return err
		}
	}

	return f.SetCellStyle(sheet, "A1", cell(len(pairs)+1, 1), style)
}

// dayColumn resolves the grid lessons of pair on day to NS lesson names,
// one entry per slot. Unbound labels are kept with UnresolvedMark.
func dayColumn(pair *correlate.Correlation, day model.Day, slots int) [][]string {
	inverted := assemble.Invert(pair.Mapping())

	out := make([][]string, slots)
	for _, gl := range pair.Grid.Lessons {
		if gl.Day.Index != day.Index || gl.Slot < 0 || gl.Slot >= slots {
			continue
		}

		if ns, ok := inverted[gl.Label()]; ok {
			out[gl.Slot] = append(out[gl.Slot], ns.SubjectName())
			continue
		}

		out[gl.Slot] = append(out[gl.Slot], UnresolvedMark+string(gl.Label()))
	}

	return out
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
