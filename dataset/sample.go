package dataset

import (
	"context"
	"fmt"

	"github.com/pbanos/id3/feature"
)

/*
Sample represents an item to process or from which to learn how to process them.

Its ValueFor method returns the value of the sample corresponding to the feature
passed as parameter, or an error if the sample has none.
*/
type Sample interface {
	ValueFor(context.Context, feature.Feature) (string, error)
}

type sample struct {
	featureValues map[string]string
}

type rowSample struct {
	columns map[string]int
	row     []string
}

/*
NewSample takes a map of feature string names to values and returns
a sample.
*/
func NewSample(featureValues map[string]string) Sample {
	return &sample{featureValues}
}

func (s *sample) ValueFor(_ context.Context, f feature.Feature) (string, error) {
	v, ok := s.featureValues[f.Name()]
	if !ok {
		return "", fmt.Errorf("sample has no value for feature %s", f.Name())
	}
	return v, nil
}

func (s *sample) String() string {
	return fmt.Sprintf("[%v]", s.featureValues)
}

func (rs *rowSample) ValueFor(_ context.Context, f feature.Feature) (string, error) {
	i, ok := rs.columns[f.Name()]
	if !ok {
		return "", fmt.Errorf("sample has no column for feature %s", f.Name())
	}
	if i >= len(rs.row) {
		return "", fmt.Errorf("sample has %d fields, no value for feature %s at column %d", len(rs.row), f.Name(), i)
	}
	return rs.row[i], nil
}

func (rs *rowSample) String() string {
	return fmt.Sprintf("%v", rs.row)
}
