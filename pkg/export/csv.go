package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/limbo/hydration/pkg/entity"
)

const FileName = "hydration_log.csv"

var header = []string{"timestamp", "amount_ml"}

// WriteHistoryCSV writes one row per entry in the given order.
// The timestamp column keeps the stored text unchanged.
func WriteHistoryCSV(w io.Writer, history []entity.HistoryEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, h := range history {
		if err := cw.Write([]string{h.Raw, strconv.Itoa(h.Amount)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
