package dataset

import (
	"fmt"

	"github.com/pbanos/id3/feature"
)

/*
Table is an ordered sequence of rows of categorical values under a header
naming each column. Every row has exactly one field per column. A Table is
never modified after being built.
*/
type Table struct {
	header  []string
	columns map[string]int
	rows    [][]string
}

/*
NewTable takes a header and a slice of rows and returns a Table with them,
or a *MalformedError if a column name is empty or repeated, or a row does not
have exactly one field per column. Rows are copied, so later changes to the
given slices do not affect the table.
*/
func NewTable(header []string, rows [][]string) (*Table, error) {
	if len(header) == 0 {
		return nil, Malformed(-1, "empty header")
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if name == "" {
			return nil, Malformed(-1, "column %d has no name", i)
		}
		if _, ok := columns[name]; ok {
			return nil, Malformed(-1, "column %s appears twice in header", name)
		}
		columns[name] = i
	}
	t := &Table{
		header:  append([]string(nil), header...),
		columns: columns,
		rows:    make([][]string, 0, len(rows)),
	}
	for i, row := range rows {
		if len(row) != len(header) {
			return nil, Malformed(i, "row has %d fields, header has %d columns", len(row), len(header))
		}
		t.rows = append(t.rows, append([]string(nil), row...))
	}
	return t, nil
}

// Header returns the names of the columns of the table
func (t *Table) Header() []string {
	return append([]string(nil), t.header...)
}

// Rows returns the rows of the table. They must not be modified.
func (t *Table) Rows() [][]string {
	return t.rows
}

// Len returns the number of rows in the table
func (t *Table) Len() int {
	return len(t.rows)
}

/*
Column takes the name of a column and returns its index and true, or
-1 and false if the table has no such column.
*/
func (t *Table) Column(name string) (int, bool) {
	i, ok := t.columns[name]
	if !ok {
		return -1, false
	}
	return i, true
}

/*
Features takes the name of the target column and returns a discrete
feature for it and discrete features for every other column in header
order. An empty target name selects the last column. An error is returned
if the target column does not exist.
*/
func (t *Table) Features(target string) (feature.Feature, []feature.Feature, error) {
	ti := len(t.header) - 1
	if target != "" {
		var ok bool
		ti, ok = t.Column(target)
		if !ok {
			return nil, nil, Malformed(-1, "target column %s not found", target)
		}
	}
	label := feature.NewDiscreteFeature(t.header[ti], nil)
	features := make([]feature.Feature, 0, len(t.header)-1)
	for i, name := range t.header {
		if i != ti {
			features = append(features, feature.NewDiscreteFeature(name, nil))
		}
	}
	return label, features, nil
}

/*
Check takes a slice of features and returns a *MalformedError if
any of them does not name a column of the table.
*/
func (t *Table) Check(features ...feature.Feature) error {
	for _, f := range features {
		if _, ok := t.columns[f.Name()]; !ok {
			return Malformed(-1, "no column for feature %s", f.Name())
		}
	}
	return nil
}

// Samples returns a sample for each row of the table, in order
func (t *Table) Samples() []Sample {
	samples := make([]Sample, len(t.rows))
	for i, row := range t.rows {
		samples[i] = &rowSample{t.columns, row}
	}
	return samples
}

// Dataset returns a Dataset with a sample for each row of the table
func (t *Table) Dataset() Dataset {
	return New(t.Samples())
}

func (t *Table) String() string {
	return fmt.Sprintf("{Table %v, %d rows}", t.header, len(t.rows))
}

/*
CountOccurrences takes a slice of rows and returns, for each column,
a map of the values found on that column to the number of rows in
which they appear. Column order is preserved.
*/
func CountOccurrences(rows [][]string) []map[string]int {
	var result []map[string]int
	for _, row := range rows {
		for len(result) < len(row) {
			result = append(result, make(map[string]int))
		}
		for i, v := range row {
			result[i][v]++
		}
	}
	return result
}
