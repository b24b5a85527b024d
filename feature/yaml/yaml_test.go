package yaml

import (
	"testing"

	"github.com/pbanos/id3/feature"
)

const weatherMetadata = `
label: Play
features:
  Outlook: [Sunny, Overcast, Rain]
  Temperature: [Hot, Mild, Cool]
  Humidity:
  Play: ["Yes", "No"]
  Wind: [Weak, Strong]
`

func TestReadMetadataKeepsDeclarationOrder(t *testing.T) {
	md, err := ReadMetadata([]byte(weatherMetadata))
	if err != nil {
		t.Fatal("unexpected error reading metadata:", err)
	}
	if md.Label.Name() != "Play" {
		t.Error("expected label to be Play, got:", md.Label.Name())
	}
	expected := []string{"Outlook", "Temperature", "Humidity", "Wind"}
	if len(md.Features) != len(expected) {
		t.Fatalf("expected %d features, got: %d", len(expected), len(md.Features))
	}
	for i, name := range expected {
		if md.Features[i].Name() != name {
			t.Errorf("expected feature #%d to be %s, got: %s", i, name, md.Features[i].Name())
		}
	}
}

func TestReadMetadataValues(t *testing.T) {
	md, err := ReadMetadata([]byte(weatherMetadata))
	if err != nil {
		t.Fatal("unexpected error reading metadata:", err)
	}
	outlook, ok := md.Features[0].(*feature.DiscreteFeature)
	if !ok {
		t.Fatalf("expected a discrete feature, got: %T", md.Features[0])
	}
	if len(outlook.AvailableValues()) != 3 {
		t.Error("expected Outlook to have 3 values, got:", outlook.AvailableValues())
	}
	if ok, _ := outlook.Valid("Snow"); ok {
		t.Error("expected Snow to be rejected for Outlook")
	}
	if ok, err := md.Features[2].Valid("anything"); !ok {
		t.Error("expected Humidity without values to accept anything, got:", err)
	}
	if ok, err := md.Label.Valid("Yes"); !ok {
		t.Error("expected label to accept Yes, got:", err)
	}
}

func TestReadMetadataErrors(t *testing.T) {
	docs := map[string]string{
		"no features":      "label: Play\n",
		"no label":         "features:\n  Outlook: [Sunny]\n",
		"undeclared label": "label: Play\nfeatures:\n  Outlook: [Sunny]\n",
		"continuous":       "label: Play\nfeatures:\n  Play: [a]\n  Temp: continuous\n",
		"not yaml":         "label: [",
	}
	for name, doc := range docs {
		_, err := ReadMetadata([]byte(doc))
		if err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}
