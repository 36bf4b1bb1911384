// Package spreadsheet reads plan rows from Excel workbooks.
package spreadsheet

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

// headerScanRows is how many leading rows are searched for a header.
const headerScanRows = 10

// minHeaderMatches is how many known columns a row must name to be a header.
const minHeaderMatches = 3

type field int

const (
	fieldDoctor field = iota
	fieldRegion
	fieldDistrict
	fieldAmount
	fieldMode
	fieldCard
	fieldWorkplace
	fieldSpecialty
	fieldPhone
	fieldGroup
	fieldManager
)

// headerPatterns are lowercase substrings that identify a column header.
var headerPatterns = []struct {
	field    field
	patterns []string
}{
	{fieldDoctor, []string{"фио", "doctor", "name", "full name", "имя", "fullname"}},
	{fieldRegion, []string{"регион", "region", "viloyat"}},
	{fieldDistrict, []string{"район", "district", "tuman", "city"}},
	{fieldAmount, []string{"сумм", "сумма", "target", "amount", "plan", "actual amount", "total", "summ", "план"}},
	{fieldMode, []string{"форма", "type", "form", "payment type", "to'lov turi"}},
	{fieldCard, []string{"номер карты", "card", "card number", "karta"}},
	{fieldWorkplace, []string{"место работы", "workplace", "work", "joy"}},
	{fieldSpecialty, []string{"специальность", "specialty", "spec", "kasb"}},
	{fieldPhone, []string{"номер телефо", "phone", "tel", "number", "mobile", "телефон"}},
	{fieldGroup, []string{"групп", "group", "guruh", "sinf", "toifa"}},
	{fieldManager, []string{"мп", "manager", "rm", "regional manager", "boshqaruvchi"}},
}

// fallbackLayout is the fixed A..J layout used when no header is found.
var fallbackLayout = map[field]int{
	fieldDoctor:    0,
	fieldRegion:    1,
	fieldDistrict:  2,
	fieldAmount:    3,
	fieldMode:      4,
	fieldWorkplace: 5,
	fieldSpecialty: 6,
	fieldPhone:     7,
	fieldGroup:     8,
	fieldManager:   9,
}

// Reader extracts raw plan rows from the active sheet of a workbook.
type Reader struct {
	log *slog.Logger
}

// NewReader creates a new workbook reader.
func NewReader(logger *slog.Logger) *Reader {
	return &Reader{log: logger.With("adapter", "spreadsheet")}
}

// Read parses an .xlsx stream. Rows are returned as written; cleaning and
// skipping are left to the importer.
func (r *Reader) Read(src io.Reader) ([]domain.RawPlanRow, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: read sheet %q: %w", sheet, err)
	}

	header, columns := detectColumns(rows)
	if header < 0 {
		r.log.Info("no header row found, using fixed layout", slog.String("sheet", sheet))
	}

	out := make([]domain.RawPlanRow, 0, len(rows))
	for i := header + 1; i < len(rows); i++ {
		out = append(out, toRaw(rows[i], i+1, columns))
	}
	return out, nil
}

// detectColumns finds the header row among the leading rows and maps fields
// to column indexes. It returns -1 and the fixed layout when none qualifies.
func detectColumns(rows [][]string) (int, map[field]int) {
	for i := 0; i < len(rows) && i < headerScanRows; i++ {
		columns := make(map[field]int)
		for col, cell := range rows[i] {
			cell = strings.ToLower(strings.TrimSpace(cell))
			if cell == "" {
				continue
			}
			for _, h := range headerPatterns {
				for _, p := range h.patterns {
					if strings.Contains(cell, p) {
						columns[h.field] = col
						break
					}
				}
			}
		}
		if len(columns) >= minHeaderMatches {
			return i, columns
		}
	}
	return -1, fallbackLayout
}

func toRaw(row []string, line int, columns map[field]int) domain.RawPlanRow {
	get := func(f field) string {
		col, ok := columns[f]
		if !ok || col >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[col])
	}

	return domain.RawPlanRow{
		Line:       line,
		DoctorName: get(fieldDoctor),
		Region:     get(fieldRegion),
		District:   get(fieldDistrict),
		Amount:     get(fieldAmount),
		Mode:       get(fieldMode),
		Workplace:  get(fieldWorkplace),
		Specialty:  get(fieldSpecialty),
		Phone:      get(fieldPhone),
		Group:      get(fieldGroup),
		Manager:    get(fieldManager),
		CardNumber: get(fieldCard),
	}
}
