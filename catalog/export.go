package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/velvettable/velvet-admin/models"
)

// ExportHeader is the first row of every catalog export.
var ExportHeader = []string{"id", "name", "category", "price", "rating"}

// ExportFilename names the download after the current calendar date,
// e.g. velvet_table_export_2026-09-01.csv.
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("velvet_table_export_%s.csv", t.Format("2006-01-02"))
}

// WriteCSV serializes the filtered (pre-pagination) result set as
// CSV. Fields are quoted per RFC 4180, so names containing commas or
// quotes survive a round trip.
func WriteCSV(w io.Writer, items []models.MenuItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}
	for _, it := range items {
		rec := []string{
			strconv.FormatUint(it.ID, 10),
			it.Name,
			string(it.Category),
			strconv.FormatInt(it.Price, 10),
			strconv.FormatFloat(it.Rating, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write export row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
