package id3

import (
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

var weatherHeader = []string{"Outlook", "Temperature", "Humidity", "Wind", "Play"}

var weatherRows = [][]string{
	{"Sunny", "Hot", "High", "Weak", "No"},
	{"Sunny", "Hot", "High", "Strong", "No"},
	{"Overcast", "Hot", "High", "Weak", "Yes"},
	{"Rain", "Mild", "High", "Weak", "Yes"},
	{"Rain", "Cool", "Normal", "Weak", "Yes"},
	{"Rain", "Cool", "Normal", "Strong", "No"},
	{"Overcast", "Cool", "Normal", "Strong", "Yes"},
	{"Sunny", "Mild", "High", "Weak", "No"},
	{"Sunny", "Cool", "Normal", "Weak", "Yes"},
	{"Rain", "Mild", "Normal", "Weak", "Yes"},
	{"Sunny", "Mild", "Normal", "Strong", "Yes"},
	{"Overcast", "Mild", "High", "Strong", "Yes"},
	{"Overcast", "Hot", "Normal", "Weak", "Yes"},
	{"Rain", "Mild", "High", "Strong", "No"},
}

const weatherOutline = `Attribute: Outlook
|-- Value = Sunny
  Attribute: Humidity
  |-- Value = High
    Leaf: No
  |-- Value = Normal
    Leaf: Yes
|-- Value = Overcast
  Leaf: Yes
|-- Value = Rain
  Attribute: Wind
  |-- Value = Weak
    Leaf: Yes
  |-- Value = Strong
    Leaf: No
`

func table(t *testing.T, header []string, rows [][]string) (dataset.Dataset, feature.Feature, []feature.Feature) {
	t.Helper()
	tbl, err := dataset.NewTable(header, rows)
	if err != nil {
		t.Fatal("unexpected error building table:", err)
	}
	label, features, err := tbl.Features("")
	if err != nil {
		t.Fatal("unexpected error obtaining features:", err)
	}
	return tbl.Dataset(), label, features
}

func weather(t *testing.T) (dataset.Dataset, feature.Feature, []feature.Feature) {
	return table(t, weatherHeader, weatherRows)
}
