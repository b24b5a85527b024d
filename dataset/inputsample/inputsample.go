/*
Package inputsample provides an implementation of dataset.Sample that is read
from an io.Reader.
*/
package inputsample

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

/*
readSample represents a sample whose feature values
are retrieved from a reader. A feature value will be
requested using a FeatureValueRequester before reading it.
*/
type readSample struct {
	obtainedValues        map[string]string
	scanner               *bufio.Scanner
	featureValueRequester FeatureValueRequester
	features              []feature.Feature
}

/*
FeatureValueRequester represents a way to ask
for feature values and reject the given values.
*/
type FeatureValueRequester interface {
	RequestValueFor(feature.Feature) error
	RejectValueFor(feature.Feature, string) error
}

/*
New takes an io.Reader, a slice of features and a FeatureValueRequester
and returns a Sample.

The returned Sample ValueFor method reads feature values first
requesting them with the given FeatureValueRequester and
then parsing the values from the reader. Values are only requested
once: later calls for the same feature return the value obtained
the first time.

The parsing expects each value to be presented ending with the
'\n' character, that is in new lines. Lines will be read from the
reader until a line with a valid value for the feature is found.
Non accepted values will be rejected with the FeatureValueRequester's
RejectValueFor method.

Attempting to obtain a value for Feature not in the given
features slice returns an error.
*/
func New(r io.Reader, features []feature.Feature, featureValueRequester FeatureValueRequester) dataset.Sample {
	scanner := bufio.NewScanner(r)
	return &readSample{make(map[string]string), scanner, featureValueRequester, features}
}

func (rs *readSample) ValueFor(ctx context.Context, f feature.Feature) (string, error) {
	value, ok := rs.obtainedValues[f.Name()]
	if ok {
		return value, nil
	}
	var featureWithInfo feature.Feature
	for _, feature := range rs.features {
		if f.Name() == feature.Name() {
			featureWithInfo = feature
		}
	}
	if featureWithInfo == nil {
		return "", fmt.Errorf("have no information about feature %s, do not know how to read its value", f.Name())
	}
	err := rs.featureValueRequester.RequestValueFor(featureWithInfo)
	if err != nil {
		return "", err
	}
	for rs.scanner.Scan() {
		if err = ctx.Err(); err != nil {
			return "", err
		}
		line := rs.scanner.Text()
		if ok, _ := featureWithInfo.Valid(line); ok {
			rs.obtainedValues[f.Name()] = line
			return line, nil
		}
		err = rs.featureValueRequester.RejectValueFor(featureWithInfo, line)
		if err != nil {
			return "", err
		}
	}
	err = rs.scanner.Err()
	if err != nil {
		return "", err
	}
	return "", fmt.Errorf("EOF when requesting value for %s", f.Name())
}
