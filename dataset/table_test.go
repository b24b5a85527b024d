package dataset

import (
	"context"
	"errors"
	"testing"
)

func TestNewTableRejectsRowLengthMismatch(t *testing.T) {
	_, err := NewTable([]string{"a", "b", "target"}, [][]string{
		{"x", "y", "Yes"},
		{"x", "No"},
	})
	if err == nil {
		t.Fatal("expected error for row with missing field")
	}
	if !errors.Is(err, ErrMalformed) {
		t.Error("expected error to be ErrMalformed, got:", err)
	}
	var me *MalformedError
	if !errors.As(err, &me) {
		t.Fatalf("expected a *MalformedError, got: %T", err)
	}
	if me.Row != 1 {
		t.Error("expected offending row to be 1, got:", me.Row)
	}
}

func TestNewTableRejectsBadHeaders(t *testing.T) {
	headers := [][]string{
		nil,
		{"a", ""},
		{"a", "a"},
	}
	for _, h := range headers {
		if _, err := NewTable(h, nil); !errors.Is(err, ErrMalformed) {
			t.Errorf("expected header %q to be rejected, got: %v", h, err)
		}
	}
}

func TestNewTableCopiesRows(t *testing.T) {
	rows := [][]string{{"x", "Yes"}}
	table, err := NewTable([]string{"a", "target"}, rows)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	rows[0][1] = "No"
	if table.Rows()[0][1] != "Yes" {
		t.Error("expected table to keep its own copy of rows")
	}
}

func TestTableFeatures(t *testing.T) {
	table, err := NewTable([]string{"a", "target", "b"}, [][]string{{"x", "Yes", "y"}})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	label, features, err := table.Features("")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if label.Name() != "b" {
		t.Error("expected last column to be the default target, got:", label.Name())
	}
	if len(features) != 2 || features[0].Name() != "a" || features[1].Name() != "target" {
		t.Error("expected features a and target, got:", features)
	}
	label, features, err = table.Features("target")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if label.Name() != "target" || len(features) != 2 || features[1].Name() != "b" {
		t.Error("expected named target with features a and b, got:", label, features)
	}
	if _, _, err = table.Features("missing"); !errors.Is(err, ErrMalformed) {
		t.Error("expected missing target to be rejected, got:", err)
	}
	if err = table.Check(features...); err != nil {
		t.Error("expected table features to check, got:", err)
	}
}

func TestTableSamples(t *testing.T) {
	table, err := NewTable([]string{"a", "target"}, [][]string{{"x", "Yes"}, {"z", "No"}})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	label, features, _ := table.Features("")
	samples := table.Samples()
	if len(samples) != 2 {
		t.Fatal("expected 2 samples, got:", len(samples))
	}
	v, err := samples[1].ValueFor(context.Background(), features[0])
	if err != nil || v != "z" {
		t.Errorf("expected second sample to have a=z, got: %q (%v)", v, err)
	}
	v, err = samples[0].ValueFor(context.Background(), label)
	if err != nil || v != "Yes" {
		t.Errorf("expected first sample to have target=Yes, got: %q (%v)", v, err)
	}
}

func TestCountOccurrences(t *testing.T) {
	counts := CountOccurrences([][]string{
		{"Sunny", "Hot", "No"},
		{"Rain", "Hot", "Yes"},
		{"Sunny", "Cool", "Yes"},
	})
	if len(counts) != 3 {
		t.Fatal("expected one map per column, got:", len(counts))
	}
	if counts[0]["Sunny"] != 2 || counts[0]["Rain"] != 1 || len(counts[0]) != 2 {
		t.Error("unexpected counts for first column:", counts[0])
	}
	if counts[1]["Hot"] != 2 || counts[1]["Cool"] != 1 {
		t.Error("unexpected counts for second column:", counts[1])
	}
	if counts[2]["Yes"] != 2 || counts[2]["No"] != 1 {
		t.Error("unexpected counts for third column:", counts[2])
	}
	if CountOccurrences(nil) != nil {
		t.Error("expected no counts for no rows")
	}
}
