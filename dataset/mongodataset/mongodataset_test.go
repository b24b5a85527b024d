package mongodataset

import (
	"errors"
	"testing"

	"github.com/pbanos/id3/dataset"
	"gopkg.in/mgo.v2/bson"
)

func TestTableFromDocumentsTakesColumnsFromFirstDocument(t *testing.T) {
	docs := []bson.D{
		{{Name: "_id", Value: 1}, {Name: "Outlook", Value: "Sunny"}, {Name: "Play", Value: "No"}},
		{{Name: "_id", Value: 2}, {Name: "Play", Value: "Yes"}, {Name: "Outlook", Value: "Overcast"}},
		{{Name: "_id", Value: 3}, {Name: "Outlook", Value: 7}, {Name: "Play", Value: true}},
	}
	tbl, err := tableFromDocuments(nil, docs)
	if err != nil {
		t.Fatal("unexpected error building table:", err)
	}
	if h := tbl.Header(); len(h) != 2 || h[0] != "Outlook" || h[1] != "Play" {
		t.Error("expected header [Outlook Play], got:", h)
	}
	expected := [][]string{{"Sunny", "No"}, {"Overcast", "Yes"}, {"7", "true"}}
	for i, row := range tbl.Rows() {
		if row[0] != expected[i][0] || row[1] != expected[i][1] {
			t.Errorf("expected row %d to be %v, got: %v", i, expected[i], row)
		}
	}
}

func TestTableFromDocumentsWithColumns(t *testing.T) {
	docs := []bson.D{
		{{Name: "Outlook", Value: "Sunny"}, {Name: "Wind", Value: "Weak"}, {Name: "Play", Value: "No"}},
	}
	tbl, err := tableFromDocuments([]string{"Play", "Outlook"}, docs)
	if err != nil {
		t.Fatal("unexpected error building table:", err)
	}
	if row := tbl.Rows()[0]; row[0] != "No" || row[1] != "Sunny" {
		t.Error("expected row [No Sunny], got:", row)
	}
}

func TestTableFromDocumentsMissingField(t *testing.T) {
	docs := []bson.D{
		{{Name: "Outlook", Value: "Sunny"}, {Name: "Play", Value: "No"}},
		{{Name: "Outlook", Value: "Rain"}},
	}
	_, err := tableFromDocuments(nil, docs)
	var me *dataset.MalformedError
	if !errors.As(err, &me) {
		t.Fatal("expected a *dataset.MalformedError, got:", err)
	}
	if me.Row != 1 {
		t.Error("expected error on row 1, got:", me.Row)
	}
	_, err = tableFromDocuments(nil, nil)
	if !errors.Is(err, dataset.ErrMalformed) {
		t.Error("expected a malformed dataset error for no documents, got:", err)
	}
}

func TestCheckFieldNames(t *testing.T) {
	if err := checkFieldNames([]string{"Outlook", "Play"}); err != nil {
		t.Error("unexpected error checking valid names:", err)
	}
	for _, name := range []string{"_id", "a.b", "$a"} {
		if err := checkFieldNames([]string{name}); err == nil {
			t.Errorf("expected an error for column name %q", name)
		}
	}
}
