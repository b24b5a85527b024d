package id3

import (
	"context"
	"math"
	"testing"
)

func TestInformationGainOnWeather(t *testing.T) {
	s, label, features := weather(t)
	expected := map[string]float64{
		"Outlook":     0.246750,
		"Temperature": 0.029223,
		"Humidity":    0.151836,
		"Wind":        0.048127,
	}
	for _, f := range features {
		ig, err := InformationGain(context.Background(), s, f, label)
		if err != nil {
			t.Fatalf("unexpected error computing information gain for %s: %v", f.Name(), err)
		}
		if math.Abs(ig-expected[f.Name()]) > 1e-6 {
			t.Errorf("expected information gain for %s to be %f, got: %f", f.Name(), expected[f.Name()], ig)
		}
	}
}

func TestSplitInformationAndGainRatioOnWeather(t *testing.T) {
	s, label, features := weather(t)
	outlook := features[0]
	si, err := SplitInformation(context.Background(), s, outlook)
	if err != nil {
		t.Fatal("unexpected error computing split information:", err)
	}
	if math.Abs(si-1.577406) > 1e-6 {
		t.Errorf("expected split information for Outlook to be 1.577406, got: %f", si)
	}
	gr, err := GainRatio(context.Background(), s, outlook, label)
	if err != nil {
		t.Fatal("unexpected error computing gain ratio:", err)
	}
	if math.Abs(gr-0.156428) > 1e-6 {
		t.Errorf("expected gain ratio for Outlook to be 0.156428, got: %f", gr)
	}
}

func TestPartitionKeepsFirstSeenValues(t *testing.T) {
	s, label, features := weather(t)
	p, err := NewPartition(context.Background(), s, features[0], label)
	if err != nil {
		t.Fatal("unexpected error partitioning:", err)
	}
	expected := []string{"Sunny", "Overcast", "Rain"}
	if len(p.Values) != len(expected) || len(p.Subsets) != len(expected) {
		t.Fatalf("expected %d values and subsets, got: %v and %d subsets", len(expected), p.Values, len(p.Subsets))
	}
	counts := []int{5, 4, 5}
	for i, v := range expected {
		if p.Values[i] != v {
			t.Errorf("expected value #%d to be %s, got: %s", i, v, p.Values[i])
		}
		c, err := p.Subsets[i].Count(context.Background())
		if err != nil {
			t.Fatal("unexpected error counting subset:", err)
		}
		if c != counts[i] {
			t.Errorf("expected subset for %s to have %d samples, got: %d", v, counts[i], c)
		}
	}
}

func TestConstantFeatureScoresZero(t *testing.T) {
	s, label, features := table(t, []string{"A", "B", "L"}, [][]string{
		{"x", "1", "yes"},
		{"x", "2", "no"},
		{"x", "1", "yes"},
		{"x", "2", "yes"},
	})
	p, err := NewPartition(context.Background(), s, features[0], label)
	if err != nil {
		t.Fatal("unexpected error partitioning:", err)
	}
	if p.InformationGain() != 0.0 {
		t.Error("expected information gain of a constant feature to be 0, got:", p.InformationGain())
	}
	if p.SplitInformation() != 0.0 {
		t.Error("expected split information of a constant feature to be 0, got:", p.SplitInformation())
	}
	if p.GainRatio() != 0.0 {
		t.Error("expected gain ratio of a constant feature to be 0, got:", p.GainRatio())
	}
}

func TestScorers(t *testing.T) {
	p := &Partition{informationGain: 0.5, splitInformation: 2.0}
	if s := ByInformationGain().Score(p); s != 0.5 {
		t.Error("expected information gain scorer to return 0.5, got:", s)
	}
	if s := ByGainRatio().Score(p); s != 0.25 {
		t.Error("expected gain ratio scorer to return 0.25, got:", s)
	}
}
