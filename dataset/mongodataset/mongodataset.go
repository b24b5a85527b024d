/*
Package mongodataset reads and writes dataset.Table values from and to
MongoDB collections, with a document for every row of the table.
*/
package mongodataset

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pbanos/id3/dataset"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

// DefaultCollection is the name of the collection used when none is given
const DefaultCollection = "samples"

/*
Open takes a MongoDB connection URL and a timeout and returns a session
on the database in the URL or an error if it fails to connect to it.
*/
func Open(url string, timeout time.Duration) (*mgo.Session, error) {
	session, err := mgo.DialWithTimeout(url, timeout)
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB at %s: %v", url, err)
	}
	return session, nil
}

/*
ReadTable takes a context, a MongoDB session, the name of a collection
on the session's default database and a slice of column names, and returns
a dataset.Table with a row for every document in the collection.

If no columns are given, the fields of the first document (but _id) are
used in the order they appear. Values of any type are converted to their
string representation. A document lacking one of the columns makes it
return a *dataset.MalformedError for its row.
*/
func ReadTable(ctx context.Context, session *mgo.Session, collection string, columns []string) (*dataset.Table, error) {
	iter := session.DB("").C(collection).Find(nil).Sort("_id").Iter()
	defer iter.Close()
	var docs []bson.D
	var doc bson.D
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
		doc = nil
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("reading collection %s: %v", collection, err)
	}
	return tableFromDocuments(columns, docs)
}

/*
WriteTable takes a context, a MongoDB session, the name of a collection on
the session's default database and a dataset.Table and inserts a document
for every row of the table into the collection, with a field per column.
Column names must not be _id nor contain the '.' or '$' characters.
*/
func WriteTable(ctx context.Context, session *mgo.Session, collection string, t *dataset.Table) error {
	header := t.Header()
	err := checkFieldNames(header)
	if err != nil {
		return err
	}
	docs := make([]interface{}, 0, t.Len())
	for _, row := range t.Rows() {
		doc := make(bson.D, 0, len(header))
		for i, name := range header {
			doc = append(doc, bson.DocElem{Name: name, Value: row[i]})
		}
		docs = append(docs, doc)
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}
	err = session.DB("").C(collection).Insert(docs...)
	if err != nil {
		return fmt.Errorf("inserting into collection %s: %v", collection, err)
	}
	return nil
}

func tableFromDocuments(columns []string, docs []bson.D) (*dataset.Table, error) {
	if len(columns) == 0 {
		if len(docs) == 0 {
			return nil, dataset.Malformed(-1, "no documents to take columns from")
		}
		for _, e := range docs[0] {
			if e.Name != "_id" {
				columns = append(columns, e.Name)
			}
		}
	}
	rows := make([][]string, 0, len(docs))
	for i, doc := range docs {
		values := doc.Map()
		row := make([]string, len(columns))
		for j, name := range columns {
			v, ok := values[name]
			if !ok || v == nil {
				return nil, dataset.Malformed(i, "document has no value for %s", name)
			}
			row[j] = fmt.Sprintf("%v", v)
		}
		rows = append(rows, row)
	}
	return dataset.NewTable(columns, rows)
}

func checkFieldNames(names []string) error {
	for _, name := range names {
		if name == "_id" {
			return fmt.Errorf("invalid column name %q: reserved collection field", "_id")
		}
		if strings.ContainsAny(name, ".$") {
			return fmt.Errorf("invalid column name %q: contains reserved characters %q or %q", name, ".", "$")
		}
	}
	return nil
}
