package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	sim "github.com/piket-sim/piket-sim/sim"
)

// CSVHeader is the column layout of the results download.
var CSVHeader = []string{
	"item", "side_dish_s", "transport_s", "rice_s", "total_s",
	"start_s", "end_s", "start_clock", "end_clock",
}

// WriteCSV writes table sorted by item index, one row per record, with the
// wall-clock start/end derived from start.
func WriteCSV(w io.Writer, table *sim.ResultTable, start time.Duration) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, r := range table.ByIndex() {
		row := []string{
			strconv.Itoa(r.Index),
			strconv.FormatInt(r.SideDish, 10),
			strconv.FormatInt(r.Transport, 10),
			strconv.FormatInt(r.Rice, 10),
			strconv.FormatInt(r.Total, 10),
			strconv.FormatInt(r.Start, 10),
			strconv.FormatInt(r.End, 10),
			ClockTime(start, r.Start),
			ClockTime(start, r.End),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row for item %d: %w", r.Index, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// SaveCSV writes the table to path, truncating any existing file.
func SaveCSV(path string, table *sim.ResultTable, start time.Duration) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, closeErr)
		}
	}()
	if err := WriteCSV(file, table, start); err != nil {
		return err
	}
	logrus.Infof("Wrote %d records to %s", table.Len(), path)
	return nil
}
