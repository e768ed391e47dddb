package gpa

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// File is an open CSV input positioned after its header row.
type File struct {
	headers []string
	rows    *csv.Reader
	f       *os.File
}

// Open opens path as a UTF-8 CSV, tolerating a leading byte-order mark, and
// reads the header record so the reader is positioned at the first data row.
// File-access errors propagate unwrapped so callers can classify them with
// errors.Is.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(f)
	if err := skipBOM(br); err != nil {
		f.Close()
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	rows := csv.NewReader(br)
	// Data rows may be shorter or longer than the header row.
	rows.FieldsPerRecord = -1

	headers, err := rows.Read()
	switch {
	case err == io.EOF:
		// Empty file: no header row. Leave headers empty and let the
		// aggregation report the structural failure.
		headers = nil
	case err != nil:
		f.Close()
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return &File{headers: headers, rows: rows, f: f}, nil
}

// Headers returns the header record, empty if the file had none.
func (cf *File) Headers() []string {
	return cf.headers
}

// Read returns the next data record. Satisfies RowReader.
func (cf *File) Read() ([]string, error) {
	return cf.rows.Read()
}

// Close releases the underlying file handle.
func (cf *File) Close() error {
	return cf.f.Close()
}

// skipBOM consumes a leading UTF-8 byte-order mark if present.
func skipBOM(br *bufio.Reader) error {
	r, _, err := br.ReadRune()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	if r != '\uFEFF' {
		return br.UnreadRune()
	}
	return nil
}
