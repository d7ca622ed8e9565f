package census

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/censustat/popestat/pkg/popestat"
)

// ReadFile reads an entire population-estimates CSV into memory and
// returns its data rows with the header removed. The header is trusted to
// match the fixed column order and is not validated by name.
//
// Files are small enough (tens of thousands of rows) that a full read is
// simpler and no slower than streaming.
func ReadFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open %s: %w", popestat.ErrInputFile, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = NumColumns

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse %s: %w", popestat.ErrInputFile, path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s is empty (missing header row)", popestat.ErrInputFile, path)
	}

	return records[1:], nil
}
