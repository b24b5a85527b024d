/*
Package csv reads dataset.Table values from CSV streams whose first row is
the header naming the columns.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/id3/dataset"
)

/*
ReadTable takes an io.Reader for a CSV stream and the rune separating its
fields and returns the dataset.Table parsed from it or an error.

The header or first row of the CSV content is expected to consist of the
names of the columns. Every other row must have exactly one field per
column, otherwise a *dataset.MalformedError indicating the offending row
(0 being the first row after the header) is returned. Fields are kept as
they are, without trimming.
*/
func ReadTable(reader io.Reader, delimiter rune) (*dataset.Table, error) {
	r := csv.NewReader(reader)
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err == io.EOF {
		return nil, dataset.Malformed(-1, "no header")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		rows = append(rows, row)
	}
	return dataset.NewTable(header, rows)
}

/*
ReadTableFromFilePath takes a filepath string and a delimiter rune, opens
the file to which the filepath points to and uses ReadTable to return the
dataset.Table read from it or an error. If the filepath is "" os.Stdin is
read instead.
*/
func ReadTableFromFilePath(filepath string, delimiter rune) (*dataset.Table, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading dataset: %v", err)
		}
		defer f.Close()
	}
	t, err := ReadTable(f, delimiter)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %w", filepath, err)
	}
	return t, err
}

/*
WriteTable takes a writer, a dataset.Table and a delimiter rune and dumps
the table to the writer in CSV format, header first. It returns an error if
something went wrong when writing.
*/
func WriteTable(writer io.Writer, t *dataset.Table, delimiter rune) error {
	w := csv.NewWriter(writer)
	w.Comma = delimiter
	err := w.Write(t.Header())
	if err != nil {
		return fmt.Errorf("writing CSV header: %v", err)
	}
	for i, row := range t.Rows() {
		err = w.Write(row)
		if err != nil {
			return fmt.Errorf("writing CSV row %d: %v", i, err)
		}
	}
	w.Flush()
	return w.Error()
}
