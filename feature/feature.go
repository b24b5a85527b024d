package feature

import "fmt"

/*
Feature represents a categorical property that can be observed on a sample.

Its Name method returns the name identifying the feature, which for tabular
data is the name of its column.

Its Valid method receives a value and returns whether the feature can take it,
along with an error describing the reason when it cannot.
*/
type Feature interface {
	Name() string
	Valid(string) (bool, error)
}

/*
DiscreteFeature represents a property that can be observed and that can only
take a value among a finite set. A DiscreteFeature without available values
accepts any value: its domain is whatever the data shows.
*/
type DiscreteFeature struct {
	name            string
	availableValues []string
}

/*
NewDiscreteFeature takes a name string and a slice of available value strings
and returns a discrete feature with the given names and available values.
*/
func NewDiscreteFeature(name string, availableValues []string) *DiscreteFeature {
	return &DiscreteFeature{name, availableValues}
}

/*
Name returns a string with the name of the feature
*/
func (df *DiscreteFeature) Name() string {
	return df.name
}

/*
Valid receives a value and returns a boolean and an error. When the feature
has no declared available values, or the value is included in them, the
method returns true and nil. Otherwise it returns false and an error
describing the reason.
*/
func (df *DiscreteFeature) Valid(value string) (bool, error) {
	if len(df.availableValues) == 0 {
		return true, nil
	}
	for _, av := range df.availableValues {
		if av == value {
			return true, nil
		}
	}
	return false, fmt.Errorf("discrete feature %s got unknown value %q", df.Name(), value)
}

/*
AvailableValues returns a string slice with the values available for the feature
*/
func (df *DiscreteFeature) AvailableValues() []string {
	return df.availableValues
}

func (df *DiscreteFeature) String() string {
	return df.name
}
