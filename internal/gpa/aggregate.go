package gpa

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/wonny/csvgpa/pkg/logger"
)

// RowReader yields one CSV record per call and io.EOF when exhausted.
// Both *csv.Reader and *File satisfy it.
type RowReader interface {
	Read() ([]string, error)
}

// Aggregator computes the mean GPA over a row stream in a single pass.
// State lives in the call, so one Aggregator can serve independent runs.
type Aggregator struct {
	log *logger.Logger
}

// NewAggregator creates a new Aggregator. The logger may be nil.
func NewAggregator(log *logger.Logger) *Aggregator {
	return &Aggregator{log: log}
}

// ComputeAverage consumes rows exactly once and returns the mean of all
// valid GPA values in the column selected by FindGPAColumn. Rows with a
// missing, malformed or out-of-range value are skipped; a malformed CSV
// record is skipped the same way. Fails with ErrNoHeader, *NoColumnError or
// ErrNoValidData when the input cannot produce an average at all.
func (a *Aggregator) ComputeAverage(headers []string, rows RowReader) (float64, error) {
	if len(headers) == 0 {
		return 0, ErrNoHeader
	}

	col, ok := FindGPAColumn(headers)
	if !ok {
		return 0, &NoColumnError{Headers: headers}
	}

	var (
		sum     float64
		count   int
		skipped int
	)

	for {
		record, err := rows.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A malformed record is a row-level fault: skip it and keep
			// going. Any other read error aborts the run.
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				skipped++
				continue
			}
			return 0, fmt.Errorf("read csv record: %w", err)
		}

		// Short rows simply lack the field.
		raw := ""
		if col < len(record) {
			raw = record[col]
		}

		value, ok := ParseGPA(raw)
		if !ok {
			skipped++
			continue
		}

		sum += value
		count++
	}

	if a.log != nil && skipped > 0 {
		a.log.WithFields(map[string]interface{}{
			"column":  headers[col],
			"valid":   count,
			"skipped": skipped,
		}).Debug("finished GPA scan")
	}

	if count == 0 {
		return 0, ErrNoValidData
	}

	return sum / float64(count), nil
}
