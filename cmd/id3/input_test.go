package main

import "testing"

func TestSourceKinds(t *testing.T) {
	cases := []struct {
		location                 string
		postgres, sqlite3, mongo bool
	}{
		{"weather.csv", false, false, false},
		{"weather.db", false, true, false},
		{"data/weather.sqlite3", false, true, false},
		{"postgresql://localhost/weather", true, false, false},
		{"postgres://localhost/weather", true, false, false},
		{"mongodb://localhost/weather", false, false, true},
	}
	for _, c := range cases {
		s := &source{location: c.location}
		if s.isPostgreSQL() != c.postgres || s.isSQLite3() != c.sqlite3 || s.isMongoDB() != c.mongo {
			t.Errorf("%s: expected postgres %v, sqlite3 %v, mongo %v, got: %v, %v, %v", c.location, c.postgres, c.sqlite3, c.mongo, s.isPostgreSQL(), s.isSQLite3(), s.isMongoDB())
		}
	}
}

func TestSourceDelimiter(t *testing.T) {
	s := &source{delimiter: ";"}
	if err := s.Validate(); err != nil {
		t.Error("unexpected error validating delimiter:", err)
	}
	if s.delimiterRune() != ';' {
		t.Errorf("expected delimiter ';', got: %q", s.delimiterRune())
	}
	for _, d := range []string{"", ",,"} {
		s = &source{delimiter: d}
		if err := s.Validate(); err == nil {
			t.Errorf("expected an error validating delimiter %q", d)
		}
	}
}

func TestPredictSampleFlags(t *testing.T) {
	config := &predictCmdConfig{sampleValues: []string{"Outlook=Sunny", "Wind=Weak"}}
	s, err := config.Sample()
	if err != nil {
		t.Fatal("unexpected error parsing sample:", err)
	}
	if s == nil {
		t.Fatal("expected a sample")
	}
	config = &predictCmdConfig{sampleValues: []string{"Outlook"}}
	if _, err = config.Sample(); err == nil {
		t.Error("expected an error for a value without feature")
	}
}
