/*
Package yaml provides methods to parse feature.Feature specifications
also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	"github.com/pbanos/id3/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
Metadata holds the features parsed from a YAML document: the label
feature a tree must predict and the features it may split on, in the
order they were declared.
*/
type Metadata struct {
	Label    feature.Feature
	Features []feature.Feature
}

/*
ReadMetadata takes a slice of bytes with a feature specification in YML and
returns the metadata parsed from it or an error.
The YML is expected to be an object containing a features property and a
label property. The value for features should be an object with a property for
each feature with its name and either a list of valid values or no value at
all (any value is valid then). The label property must name one of the
declared features; it is removed from the returned features.
Declaration order is kept, as it decides which feature wins ties when
growing a tree.
*/
func ReadMetadata(md []byte) (*Metadata, error) {
	doc := struct {
		Label    string        `yaml:"label"`
		Features yaml.MapSlice `yaml:"features"`
	}{}
	err := yaml.Unmarshal(md, &doc)
	if err != nil {
		return nil, fmt.Errorf("parsing yml features: %v", err)
	}
	if len(doc.Features) == 0 {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	if doc.Label == "" {
		return nil, fmt.Errorf("metadata file has no label")
	}
	result := &Metadata{}
	seen := make(map[string]bool)
	for _, item := range doc.Features {
		fn := fmt.Sprintf("%v", item.Key)
		if seen[fn] {
			return nil, fmt.Errorf("feature %s declared twice", fn)
		}
		seen[fn] = true
		f, err := parseFeature(fn, item.Value)
		if err != nil {
			return nil, err
		}
		if fn == doc.Label {
			result.Label = f
		} else {
			result.Features = append(result.Features, f)
		}
	}
	if result.Label == nil {
		return nil, fmt.Errorf("label %s is not a declared feature", doc.Label)
	}
	return result, nil
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and uses
ReadMetadata to parse it and return the parsed metadata or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadMetadataFromFile(filepath string) (*Metadata, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading features yml file %s: %v", filepath, err)
	}
	metadata, err := ReadMetadata(md)
	if err != nil {
		err = fmt.Errorf("parsing features yml file %s: %v", filepath, err)
	}
	return metadata, err
}

func parseFeature(name string, vs interface{}) (feature.Feature, error) {
	switch values := vs.(type) {
	case nil:
		return feature.NewDiscreteFeature(name, nil), nil
	case []interface{}:
		stringVs := make([]string, 0, len(values))
		for _, v := range values {
			stringVs = append(stringVs, fmt.Sprintf("%v", v))
		}
		return feature.NewDiscreteFeature(name, stringVs), nil
	case string:
		return nil, fmt.Errorf("feature %s: %s features are not supported, list its values instead", name, values)
	}
	return nil, fmt.Errorf("invalid feature declaration of type %T for feature %s", vs, name)
}
