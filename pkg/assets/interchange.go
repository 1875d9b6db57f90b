package assets

import (
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Assets"

// exportHeader is the fixed header row of an exported workbook. Import
// recognizes these labels too, via the alias table below.
var exportHeader = []string{"Asset Name", "Asset Type", "Asset Tag", "Serial Number", "Cost", "Acquisition Date"}

// fieldAliases maps each asset field to its accepted column headings, in
// fixed priority order: canonical label, PascalCase, snake_case, bare name.
// Matching is case- and spacing-insensitive.
var fieldAliases = []struct {
	field    string
	required bool
	aliases  []string
}{
	{field: "name", required: true, aliases: []string{"Asset Name", "AssetName", "asset_name", "name"}},
	{field: "type", required: true, aliases: []string{"Asset Type", "AssetType", "asset_type", "type"}},
	{field: "tag", required: true, aliases: []string{"Asset Tag", "AssetTag", "asset_tag", "tag"}},
	{field: "serial_number", required: false, aliases: []string{"Serial Number", "SerialNumber", "serial_number", "serial"}},
	{field: "cost", required: true, aliases: []string{"Cost", "cost"}},
	{field: "acquisition_date", required: false, aliases: []string{"Acquisition Date", "AcquisitionDate", "acquisition_date", "date"}},
}

func normalizeHeading(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// resolveColumns matches the header row against the alias table and returns
// a field -> column index map. Fields without a matching column are absent.
func resolveColumns(header []string) map[string]int {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = normalizeHeading(h)
	}

	columns := make(map[string]int)
	for _, fa := range fieldAliases {
	aliasLoop:
		for _, alias := range fa.aliases {
			want := normalizeHeading(alias)
			for i, h := range normalized {
				if h == want {
					columns[fa.field] = i
					break aliasLoop
				}
			}
		}
	}
	return columns
}

// workbookRow is one data row lifted out of a spreadsheet. Number is the
// 1-based spreadsheet row (the header is row 1, so data starts at 2).
// Missing lists required fields whose column was absent from the sheet.
type workbookRow struct {
	Number  int
	Input   AssetInput
	Missing []string
}

func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// readWorkbook parses the first sheet of an xlsx workbook into candidate
// asset rows. Cell values arrive stringified, as excelize renders them.
func readWorkbook(r io.Reader) ([]workbookRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}

	columns := resolveColumns(rows[0])

	var missingColumns []string
	for _, fa := range fieldAliases {
		if _, ok := columns[fa.field]; !ok && fa.required {
			missingColumns = append(missingColumns, fa.field)
		}
	}

	out := make([]workbookRow, 0, len(rows)-1)
	for i, row := range rows[1:] {
		wr := workbookRow{Number: i + 2, Missing: missingColumns}
		if idx, ok := columns["name"]; ok {
			wr.Input.Name = cellAt(row, idx)
		}
		if idx, ok := columns["type"]; ok {
			wr.Input.Type = cellAt(row, idx)
		}
		if idx, ok := columns["tag"]; ok {
			wr.Input.Tag = cellAt(row, idx)
		}
		if idx, ok := columns["serial_number"]; ok {
			wr.Input.SerialNumber = cellAt(row, idx)
		}
		if idx, ok := columns["cost"]; ok {
			wr.Input.Cost = cellAt(row, idx)
		}
		if idx, ok := columns["acquisition_date"]; ok {
			wr.Input.AcquisitionDate = cellAt(row, idx)
		}
		// Spreadsheets routinely carry trailing blank rows; skip them.
		if wr.Input == (AssetInput{}) {
			continue
		}
		out = append(out, wr)
	}
	return out, nil
}

// buildWorkbook renders the full asset list as a single-sheet workbook.
// Absent optional fields come out as empty cells, never omitted columns.
func buildWorkbook(list []Asset) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheetName); err != nil {
		return nil, err
	}

	header := make([]any, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheetName, "A1", &header); err != nil {
		return nil, err
	}

	for i, a := range list {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{a.Name, a.Type, a.Tag, a.SerialNumber, a.Cost, a.AcquisitionDate}
		if err := f.SetSheetRow(exportSheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
