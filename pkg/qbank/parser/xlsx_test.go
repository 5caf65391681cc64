package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/qbank-go/pkg/qbank/models"
)

const testSheet = "最终结果"

func writeWorkbook(t *testing.T, cells map[string]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", testSheet))
	for cell, value := range cells {
		require.NoError(t, f.SetCellValue(testSheet, cell, value))
	}
	_, err := f.NewSheet("说明")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "bank.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadSheet(t *testing.T) {
	path := writeWorkbook(t, map[string]interface{}{
		"A1": "题干",
		"B1": "难度",
		"C1": "ISBN",
		"A2": "下列说法正确的是\n（　）",
		"B2": 0.5,
		"C2": int64(9787574804616),
		"A4": "第二题",
	})

	src, err := Open(path, Options{})
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, []string{testSheet, "说明"}, src.Sheets())

	table, err := src.Table(testSheet)
	require.NoError(t, err)

	assert.Equal(t, testSheet, table.Sheet)
	assert.Equal(t, []string{"题干", "难度", "ISBN"}, table.Header)
	require.Len(t, table.Rows, 2, "blank row 3 is skipped")

	first := table.Rows[0]
	assert.Equal(t, 2, first.R)
	assert.Equal(t, models.TextCell("下列说法正确的是\n（　）"), first.Get("题干"))
	assert.Equal(t, models.NumberCell("0.5"), first.Get("难度"))
	assert.Equal(t, models.NumberCell("9787574804616"), first.Get("ISBN"))

	second := table.Rows[1]
	assert.Equal(t, 4, second.R)
	assert.True(t, second.Get("难度").Missing())
	assert.True(t, second.Get("not a column").Missing())
}

func TestReadSheetNotFound(t *testing.T) {
	path := writeWorkbook(t, map[string]interface{}{"A1": "题干"})

	src, err := OpenWorkbook(path)
	require.NoError(t, err)
	defer src.Close()

	_, err = src.Table("Sheet9")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestReadSheetHeaderOffset(t *testing.T) {
	path := writeWorkbook(t, map[string]interface{}{
		"B3": "chapter",
		"C3": "chapter",
		"B4": "第一章",
		"C4": "第二章",
	})

	src, err := OpenWorkbook(path)
	require.NoError(t, err)
	defer src.Close()

	table, err := src.Table(testSheet)
	require.NoError(t, err)

	assert.Equal(t, []string{"Unnamed: 0", "chapter", "chapter.1"}, table.Header)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, models.TextCell("第一章"), table.Rows[0].Get("chapter"))
	assert.Equal(t, models.TextCell("第二章"), table.Rows[0].Get("chapter.1"))
}

func TestOpenUnsupported(t *testing.T) {
	_, err := Open("bank.xls", Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestNewWorkbookInMemory(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "lesson"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "第1课时"))

	wb := NewWorkbook(f)
	defer wb.Close()

	table, err := wb.Table("Sheet1")
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, models.TextCell("第1课时"), table.Rows[0].Get("lesson"))
}
