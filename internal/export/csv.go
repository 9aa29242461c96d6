package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/domain"
)

// WriteCSV writes the mod list as a CSV file with a header row.
func WriteCSV(records []domain.ModRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range records {
		if err := w.Write(row(&records[i])); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}
