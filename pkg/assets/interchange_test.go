package assets

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestResolveColumns_CanonicalLabels(t *testing.T) {
	columns := resolveColumns([]string{"Asset Name", "Asset Type", "Asset Tag", "Serial Number", "Cost", "Acquisition Date"})

	require.Equal(t, map[string]int{
		"name":             0,
		"type":             1,
		"tag":              2,
		"serial_number":    3,
		"cost":             4,
		"acquisition_date": 5,
	}, columns)
}

func TestResolveColumns_AliasAndCaseSpacingTolerance(t *testing.T) {
	columns := resolveColumns([]string{"asset_name", "TYPE", "AssetTag", "serial", " cost ", "acquisitiondate"})

	require.Equal(t, 0, columns["name"])
	require.Equal(t, 1, columns["type"])
	require.Equal(t, 2, columns["tag"])
	require.Equal(t, 3, columns["serial_number"])
	require.Equal(t, 4, columns["cost"])
	require.Equal(t, 5, columns["acquisition_date"])
}

func TestResolveColumns_AliasPriorityPrefersCanonical(t *testing.T) {
	// Both a bare "Name" column and the canonical "Asset Name" are present;
	// the canonical label wins regardless of column order.
	columns := resolveColumns([]string{"Name", "Asset Name", "Asset Type", "Asset Tag", "Cost"})

	require.Equal(t, 1, columns["name"])
}

func TestResolveColumns_MissingColumnsAreAbsent(t *testing.T) {
	columns := resolveColumns([]string{"Asset Name", "Asset Tag"})

	_, hasType := columns["type"]
	_, hasCost := columns["cost"]
	require.False(t, hasType)
	require.False(t, hasCost)
}

func TestReadWorkbook_RowNumbersAccountForHeader(t *testing.T) {
	buf := buildTestWorkbook(t,
		[]string{"Asset Name", "Asset Type", "Asset Tag", "Cost"},
		[][]string{
			{"Dell XPS", "laptop", "LP-001", "1200.00"},
			{"Monitor", "monitor", "MN-001", "300"},
		})

	rows, err := readWorkbook(buf)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, 2, rows[0].Number)
	require.Equal(t, 3, rows[1].Number)
	require.Equal(t, "Dell XPS", rows[0].Input.Name)
	require.Equal(t, "300", rows[1].Input.Cost)
}

func TestReadWorkbook_MissingRequiredColumnFlagsEveryRow(t *testing.T) {
	buf := buildTestWorkbook(t,
		[]string{"Asset Name", "Asset Type", "Asset Tag"},
		[][]string{{"Dell XPS", "laptop", "LP-001"}})

	rows, err := readWorkbook(buf)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, []string{"cost"}, rows[0].Missing)
}

func TestReadWorkbook_SkipsBlankRows(t *testing.T) {
	buf := buildTestWorkbook(t,
		[]string{"Asset Name", "Asset Type", "Asset Tag", "Cost"},
		[][]string{
			{"Dell XPS", "laptop", "LP-001", "1200.00"},
			{"", "", "", ""},
			{"Monitor", "monitor", "MN-001", "300"},
		})

	rows, err := readWorkbook(buf)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, 2, rows[0].Number)
	require.Equal(t, 4, rows[1].Number)
}

func TestReadWorkbook_HeaderOnlySheetHasNoRows(t *testing.T) {
	buf := buildTestWorkbook(t, []string{"Asset Name", "Asset Type", "Asset Tag", "Cost"}, nil)

	rows, err := readWorkbook(buf)

	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestBuildWorkbook_FixedHeaderAndEmptyOptionals(t *testing.T) {
	data, err := buildWorkbook([]Asset{
		{ID: 1, Name: "Dell XPS", Type: "laptop", Tag: "LP-001", SerialNumber: "SN-1", Cost: "1200.00", AcquisitionDate: "2024-03-01"},
		{ID: 2, Name: "Desk", Type: "furniture", Tag: "FN-001", Cost: "450.00"},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{exportSheetName}, f.GetSheetList())

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"Asset Name", "Asset Type", "Asset Tag", "Serial Number", "Cost", "Acquisition Date"}, rows[0])
	require.Equal(t, "Dell XPS", rows[1][0])
	require.Equal(t, "1200.00", rows[1][4])
	require.Equal(t, "Desk", rows[2][0])
	// serial number and acquisition date come out as empty cells
	require.Equal(t, "", rows[2][3])
}

func TestBuildWorkbook_EmptyStoreStillHasHeader(t *testing.T) {
	data, err := buildWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Asset Name", rows[0][0])
}
