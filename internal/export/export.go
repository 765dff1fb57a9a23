// Package export renders cleaned or monthly transaction files as Excel
// workbooks.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cleared-dev/stmt/internal/fsutil"
	"github.com/cleared-dev/stmt/internal/journal"
	"github.com/cleared-dev/stmt/internal/model"
)

// ErrNotFile is returned when the export source is not a regular file.
var ErrNotFile = errors.New("not a regular file")

// SheetName is the name of the single worksheet.
const SheetName = "Transactions"

const minColWidth = 12

// WriteXLSX writes header and txns as a workbook to w. Amount and balance
// are numeric cells; everything else is text.
func WriteXLSX(w io.Writer, header string, txns []model.Transaction) error {
	if header == "" {
		header = journal.Header
	}
	titles := strings.Split(strings.TrimSpace(header), ",")

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	widths := make([]int, len(titles))
	for i, title := range titles {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, title); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		if err := f.SetCellStyle(SheetName, cell, cell, style); err != nil {
			return fmt.Errorf("styling header: %w", err)
		}
		widths[i] = len(title)
	}

	for r, txn := range txns {
		row := rowValues(txn)
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", r+2, err)
			}
			if c < len(widths) {
				if n := len(fmt.Sprint(v)); n > widths[c] {
					widths[c] = n
				}
			}
		}
	}

	for i, width := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, col, col, float64(max(width+2, minColWidth))); err != nil {
			return fmt.Errorf("sizing column %s: %w", col, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// File converts the transaction CSV at src into a workbook at dst and
// returns the number of rows exported.
func File(src, dst string) (int, error) {
	if fsutil.Exists(src) && !fsutil.IsFile(src) {
		return 0, fmt.Errorf("%s: %w", src, ErrNotFile)
	}
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	file, err := journal.ReadTransactions(in)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", src, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return 0, fmt.Errorf("creating export dir: %w", err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", dst, err)
	}
	defer out.Close()

	if err := WriteXLSX(out, file.Header, file.Transactions); err != nil {
		return 0, err
	}
	return len(file.Transactions), out.Close()
}

func rowValues(txn model.Transaction) []any {
	return []any{
		txn.ID,
		txn.ISODate(),
		txn.Description,
		txn.Amount.InexactFloat64(),
		txn.Balance.InexactFloat64(),
		int(txn.Type),
	}
}
