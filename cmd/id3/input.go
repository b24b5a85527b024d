package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/csv"
	"github.com/pbanos/id3/dataset/mongodataset"
	"github.com/pbanos/id3/dataset/sqldataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/feature/yaml"
	"github.com/spf13/pflag"
)

const mongoDialTimeout = 10 * time.Second

/*
source describes where a table is read from or written to: a CSV file
(STDIN/STDOUT when empty), a SQLite3 file (.db, .sqlite or .sqlite3), or a
PostgreSQL or MongoDB connection URL.
*/
type source struct {
	location   string
	table      string
	collection string
	delimiter  string
	maxDBConns int
}

// tableInput holds the flags shared by commands that read a table to
// grow or test a tree with.
type tableInput struct {
	*rootCmdConfig
	source
	metadataInput string
	target        string
	ctx           context.Context
	cancelFunc    context.CancelFunc
}

func (s *source) addFlags(flags *pflag.FlagSet, name, shorthand, usage string) {
	flags.StringVarP(&(s.location), name, shorthand, "", usage)
	flags.StringVar(&(s.table), name+"-table", sqldataset.DefaultTable, "database table holding the data when "+name+" is a SQLite3 file or PostgreSQL URL")
	flags.StringVar(&(s.collection), name+"-collection", mongodataset.DefaultCollection, "collection holding the data when "+name+" is a MongoDB URL")
}

func (ti *tableInput) addFlags(flags *pflag.FlagSet) {
	ti.source.addFlags(flags, "input", "i", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the data (defaults to STDIN, interpreted as CSV)")
	flags.StringVarP(&(ti.delimiter), "delimiter", "d", ",", "field delimiter of CSV input")
	flags.IntVar(&(ti.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	flags.StringVarP(&(ti.metadataInput), "metadata", "m", "", "path to a YML file with the label and the features to use, in order (defaults to every column, the target one being the label)")
	flags.StringVarP(&(ti.target), "target", "t", "", "name of the column to predict when no metadata is given (defaults to the last column)")
}

func (s *source) Validate() error {
	if utf8.RuneCountInString(s.delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", s.delimiter)
	}
	return nil
}

func (s *source) delimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(s.delimiter)
	return r
}

func (s *source) isPostgreSQL() bool {
	return sqldataset.Driver(s.location) == "postgres"
}

func (s *source) isSQLite3() bool {
	for _, suffix := range []string{".db", ".sqlite", ".sqlite3"} {
		if strings.HasSuffix(s.location, suffix) {
			return true
		}
	}
	return false
}

func (s *source) isMongoDB() bool {
	return strings.HasPrefix(s.location, "mongodb://")
}

func (s *source) ReadTable(ctx context.Context, l logger) (*dataset.Table, error) {
	switch {
	case s.location == "":
		l.Logf("Reading CSV data from STDIN...")
		return csv.ReadTable(os.Stdin, s.delimiterRune())
	case s.isPostgreSQL() || s.isSQLite3():
		l.Logf("Reading table %s from %s database at %s...", s.table, sqldataset.Driver(s.location), s.location)
		db, err := sqldataset.Open(ctx, s.location, s.maxDBConns)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return sqldataset.ReadTable(ctx, db, s.table)
	case s.isMongoDB():
		l.Logf("Reading collection %s from MongoDB at %s...", s.collection, s.location)
		session, err := mongodataset.Open(s.location, mongoDialTimeout)
		if err != nil {
			return nil, err
		}
		defer session.Close()
		return mongodataset.ReadTable(ctx, session, s.collection, nil)
	}
	l.Logf("Reading CSV data from %s...", s.location)
	return csv.ReadTableFromFilePath(s.location, s.delimiterRune())
}

func (s *source) WriteTable(ctx context.Context, l logger, t *dataset.Table) error {
	switch {
	case s.location == "":
		l.Logf("Writing CSV data to STDOUT...")
		return csv.WriteTable(os.Stdout, t, s.delimiterRune())
	case s.isPostgreSQL() || s.isSQLite3():
		l.Logf("Writing table %s to %s database at %s...", s.table, sqldataset.Driver(s.location), s.location)
		db, err := sqldataset.Open(ctx, s.location, s.maxDBConns)
		if err != nil {
			return err
		}
		defer db.Close()
		return sqldataset.WriteTable(ctx, db, s.table, t)
	case s.isMongoDB():
		l.Logf("Writing collection %s to MongoDB at %s...", s.collection, s.location)
		session, err := mongodataset.Open(s.location, mongoDialTimeout)
		if err != nil {
			return err
		}
		defer session.Close()
		return mongodataset.WriteTable(ctx, session, s.collection, t)
	}
	l.Logf("Writing CSV data to %s...", s.location)
	f, err := os.Create(s.location)
	if err != nil {
		return err
	}
	err = csv.WriteTable(f, t, s.delimiterRune())
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

/*
Features takes a table and returns the label and the features to grow a
tree with: those in the metadata file if one was given, checking the table
has a column for each of them, or the table columns otherwise.
*/
func (ti *tableInput) Features(t *dataset.Table) (feature.Feature, []feature.Feature, error) {
	if ti.metadataInput == "" {
		return t.Features(ti.target)
	}
	ti.Logf("Reading features from metadata at %s...", ti.metadataInput)
	md, err := yaml.ReadMetadataFromFile(ti.metadataInput)
	if err != nil {
		return nil, nil, err
	}
	err = t.Check(append([]feature.Feature{md.Label}, md.Features...)...)
	if err != nil {
		return nil, nil, err
	}
	return md.Label, md.Features, nil
}

func (ti *tableInput) Validate() error {
	if ti.metadataInput != "" && ti.target != "" {
		return fmt.Errorf("cannot set both metadata and target flags at the same time")
	}
	return ti.source.Validate()
}

// Context returns a context cancelled on interrupt
func (ti *tableInput) Context() context.Context {
	ti.setContextAndCancelFunc()
	return ti.ctx
}

func (ti *tableInput) ContextCancelFunc() context.CancelFunc {
	ti.setContextAndCancelFunc()
	return ti.cancelFunc
}

func (ti *tableInput) setContextAndCancelFunc() {
	if ti.ctx == nil {
		ti.ctx, ti.cancelFunc = signal.NotifyContext(context.Background(), os.Interrupt)
	}
}
