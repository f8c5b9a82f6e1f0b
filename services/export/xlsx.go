package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/timetable/core/schedule"
)

const (
	weekSheet     = "Week"
	maxSheetName  = 31
	sheetNameBad  = "[]:*?/\\"
	defaultColWid = 16
)

var headers = []string{"Day", "Start", "End", "Subject", "Section", "Room", "Instructor"}

// Options tune the workbook layout.
type Options struct {
	// GroupBy puts each group in its own sheet; zero keeps the whole week on one sheet.
	GroupBy    schedule.GroupKey
	TwelveHour bool
	Directory  *schedule.Directory // labels subjects and instructors, may be nil
}

// WriteWorkbook writes the weekly view of slots as an xlsx workbook.
// Rows follow the week, Monday first, then start time.
func WriteWorkbook(w io.Writer, slots schedule.Set, opts Options) error {
	f := excelize.NewFile()
	defer f.Close()

	boldID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "creating header style")
	}

	sheets := map[string]schedule.Set{weekSheet: slots}
	names := []string{weekSheet}
	if opts.GroupBy != 0 {
		sheets = schedule.GroupBy(slots, opts.GroupBy)
		names = schedule.SortedKeys(sheets)
		if len(names) == 0 {
			names = []string{weekSheet}
		}
	}

	used := make(map[string]bool, len(names))
	for i, name := range names {
		sheet := uniqueSheetName(sheetName(name), used)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return errors.Wrapf(err, "naming sheet %q", sheet)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return errors.Wrapf(err, "creating sheet %q", sheet)
		}
		if err := writeSheet(f, sheet, sheets[name], boldID, opts); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "writing workbook")
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, slots schedule.Set, boldID int, opts Options) error {
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return errors.Wrapf(err, "writing %s!%s", sheet, cell)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, boldID); err != nil {
		return errors.Wrapf(err, "styling %s header", sheet)
	}
	lastCol := strings.TrimRight(last, "0123456789")
	if err := f.SetColWidth(sheet, "A", lastCol, defaultColWid); err != nil {
		return errors.Wrapf(err, "sizing %s columns", sheet)
	}

	row := 2
	week := schedule.WeeklyView(slots)
	for _, day := range schedule.Days {
		for _, s := range week[day] {
			values := []interface{}{
				day.Full(),
				schedule.FormatTime(s.StartMinute, opts.TwelveHour),
				schedule.FormatTime(s.EndMinute, opts.TwelveHour),
				opts.Directory.SubjectLabel(s.SubjectCode),
				s.Section,
				s.Room,
				opts.Directory.InstructorName(s.InstructorID),
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return errors.Wrapf(err, "writing %s!%s", sheet, cell)
				}
			}
			row++
		}
	}
	return nil
}

// sheetName makes a group name acceptable as an Excel sheet name.
func sheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(sheetNameBad, r) {
			return '_'
		}
		return r
	}, strings.Trim(name, "'"))
	if name == "" {
		name = "_"
	}
	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}
	return name
}

// uniqueSheetName suffixes name until it differs, case-insensitively, from the sheets already used.
func uniqueSheetName(name string, used map[string]bool) string {
	candidate := name
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		r := []rune(name)
		if len(r)+len(suffix) > maxSheetName {
			r = r[:maxSheetName-len(suffix)]
		}
		candidate = string(r) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}
