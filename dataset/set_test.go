package dataset

import (
	"context"
	"testing"

	"github.com/pbanos/id3/feature"
)

func testTable(t *testing.T) *Table {
	table, err := NewTable([]string{"Outlook", "Wind", "Play"}, [][]string{
		{"Sunny", "Weak", "No"},
		{"Sunny", "Strong", "No"},
		{"Overcast", "Weak", "Yes"},
		{"Rain", "Weak", "Yes"},
		{"Rain", "Strong", "No"},
		{"Overcast", "Strong", "Yes"},
	})
	if err != nil {
		t.Fatal("unexpected error building table:", err)
	}
	return table
}

func TestDatasetImplementations(t *testing.T) {
	ctx := context.Background()
	table := testTable(t)
	outlook := feature.NewDiscreteFeature("Outlook", nil)
	play := feature.NewDiscreteFeature("Play", nil)
	datasets := map[string]Dataset{
		"memory-intensive": NewMemoryIntensive(table.Samples()),
		"cpu-intensive":    NewCPUIntensive(table.Samples()),
	}
	for name, ds := range datasets {
		count, err := ds.Count(ctx)
		if err != nil || count != 6 {
			t.Errorf("%s: expected 6 samples, got: %d (%v)", name, count, err)
		}
		values, err := ds.FeatureValues(ctx, outlook)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
		}
		expected := []string{"Sunny", "Overcast", "Rain"}
		if len(values) != len(expected) {
			t.Errorf("%s: expected values %v, got: %v", name, expected, values)
		} else {
			for i := range expected {
				if values[i] != expected[i] {
					t.Errorf("%s: expected values in first-seen order %v, got: %v", name, expected, values)
					break
				}
			}
		}
		e, err := ds.Entropy(ctx, play)
		if err != nil || e != 1.0 {
			t.Errorf("%s: expected entropy 1 for 3 Yes and 3 No, got: %f (%v)", name, e, err)
		}
		sunny, err := ds.SubsetWith(ctx, feature.NewDiscreteCriterion(outlook, "Sunny"))
		if err != nil {
			t.Fatalf("%s: unexpected error subsetting: %v", name, err)
		}
		counts, err := sunny.CountFeatureValues(ctx, play)
		if err != nil || len(counts) != 1 || counts["No"] != 2 {
			t.Errorf("%s: expected sunny subset to have 2 No, got: %v (%v)", name, counts, err)
		}
		samples, err := sunny.Samples(ctx)
		if err != nil || len(samples) != 2 {
			t.Errorf("%s: expected 2 sunny samples, got: %d (%v)", name, len(samples), err)
		}
		criteria, _ := sunny.Criteria(ctx)
		if len(criteria) != 1 {
			t.Errorf("%s: expected subset to keep its criterion, got: %v", name, criteria)
		}
		if count, _ := ds.Count(ctx); count != 6 {
			t.Errorf("%s: expected subsetting to leave the dataset untouched, got %d samples", name, count)
		}
	}
}

func TestDatasetPropagatesSampleErrors(t *testing.T) {
	ds := New([]Sample{NewSample(map[string]string{"Outlook": "Sunny"})})
	_, err := ds.CountFeatureValues(context.Background(), feature.NewDiscreteFeature("Play", nil))
	if err == nil {
		t.Error("expected error counting values of a feature samples lack")
	}
}

func TestDatasetHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := testTable(t).Dataset().Entropy(ctx, feature.NewDiscreteFeature("Play", nil))
	if err != context.Canceled {
		t.Error("expected context.Canceled, got:", err)
	}
}
