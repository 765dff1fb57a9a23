package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cleared-dev/stmt/internal/journal"
)

const monthly = journal.Header + "\n" +
	"20160815NDLORD00085000+010298532,2016-08-15,PAYMENT LANDLORD,-8500,10298.53,2\n" +
	"201608311SONJA00200000+019048981,2016-08-31,TRANSFER SOUTHDOWNS 7271 92-0436-2271 SONJA,20000,19048.98,1\n"

func TestWriteXLSX(t *testing.T) {
	file, err := journal.ReadTransactions(strings.NewReader(monthly))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, file.Header, file.Transactions))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, strings.Split(journal.Header, ","), rows[0])
	assert.Equal(t, "20160815NDLORD00085000+010298532", rows[1][0])
	assert.Equal(t, "2016-08-15", rows[1][1])
	assert.Equal(t, "-8500", rows[1][3])
	assert.Equal(t, "10298.53", rows[1][4])
	assert.Equal(t, "1", rows[2][5])
}

func TestWriteXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, "", nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "TrxId", rows[0][0])
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "08_Aug.csv")
	require.NoError(t, os.WriteFile(src, []byte(monthly), 0o644))
	dst := filepath.Join(dir, "exports", "08_Aug.xlsx")

	n, err := File(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	f, err := excelize.OpenFile(dst)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, SheetName, f.GetSheetName(0))
}

func TestFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := File(filepath.Join(dir, "missing.csv"), filepath.Join(dir, "out.xlsx"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFile_SourceIsDirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := File(dir, filepath.Join(dir, "out.xlsx"))
	assert.ErrorIs(t, err, ErrNotFile)
}
