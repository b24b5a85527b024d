/*
Package sqldataset reads and writes dataset.Table values from and to SQL
database tables, with a TEXT column for every column of the table.
PostgreSQL (postgres:// or postgresql:// URLs) and SQLite3 (file paths)
databases are supported.
*/
package sqldataset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/id3/dataset"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
	// Import of SQLite3 driver
	_ "github.com/mattn/go-sqlite3"
)

// DefaultTable is the name of the database table used when none is given
const DefaultTable = "samples"

/*
DB is a database connection pool that knows the SQL dialect of the driver
behind it.
*/
type DB struct {
	*sql.DB
	driver string
}

/*
Driver takes a data source and returns the name of the database/sql driver
able to open it: "postgres" for PostgreSQL connection URLs and "sqlite3"
for anything else.
*/
func Driver(source string) string {
	if strings.HasPrefix(source, "postgres://") || strings.HasPrefix(source, "postgresql://") {
		return "postgres"
	}
	return "sqlite3"
}

/*
Open takes a data source, either a PostgreSQL connection URL or the path
to a SQLite3 database file, and a maximum number of open connections (0
meaning unlimited) and returns a DB for it or an error if it cannot be
reached.
*/
func Open(ctx context.Context, source string, maxConns int) (*DB, error) {
	driver := Driver(source)
	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(maxConns)
	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to %s database: %v", driver, err)
	}
	return &DB{db, driver}, nil
}

/*
ReadTable takes a context, a DB and the name of a database table and
returns a dataset.Table with the columns and rows of the database table.
A NULL value makes it return a *dataset.MalformedError for its row.
*/
func ReadTable(ctx context.Context, db *DB, table string) (*dataset.Table, error) {
	qTable, err := quote(table)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s", qTable))
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %v", table, err)
	}
	defer rows.Close()
	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns of table %s: %v", table, err)
	}
	var result [][]string
	for i := 0; rows.Next(); i++ {
		values := make([]sql.NullString, len(header))
		dest := make([]interface{}, len(header))
		for j := range values {
			dest[j] = &values[j]
		}
		err = rows.Scan(dest...)
		if err != nil {
			return nil, fmt.Errorf("reading row %d of table %s: %v", i, table, err)
		}
		row := make([]string, len(header))
		for j, v := range values {
			if !v.Valid {
				return nil, dataset.Malformed(i, "column %s is NULL", header[j])
			}
			row[j] = v.String
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("reading table %s: %v", table, err)
	}
	return dataset.NewTable(header, result)
}

/*
WriteTable takes a context, a DB, the name of a database table and a
dataset.Table and inserts the rows of the table into the database table,
creating it if it does not exist. Rows are inserted in a single transaction.
*/
func WriteTable(ctx context.Context, db *DB, table string, t *dataset.Table) error {
	qTable, err := quote(table)
	if err != nil {
		return err
	}
	header := t.Header()
	columns := make([]string, len(header))
	placeholders := make([]string, len(header))
	for i, name := range header {
		columns[i], err = quote(name)
		if err != nil {
			return err
		}
		placeholders[i] = db.placeholder(i + 1)
	}
	var createStmtBuf bytes.Buffer
	fmt.Fprintf(&createStmtBuf, "CREATE TABLE IF NOT EXISTS %s(", qTable)
	for i, c := range columns {
		if i > 0 {
			createStmtBuf.WriteString(", ")
		}
		fmt.Fprintf(&createStmtBuf, "%s TEXT NOT NULL", c)
	}
	createStmtBuf.WriteString(")")
	_, err = db.ExecContext(ctx, createStmtBuf.String())
	if err != nil {
		return fmt.Errorf("creating table %s: %v", table, err)
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %v", err)
	}
	insertStmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s(%s) VALUES (%s)", qTable, strings.Join(columns, ", "), strings.Join(placeholders, ", ")))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert statement: %v", err)
	}
	defer insertStmt.Close()
	args := make([]interface{}, len(header))
	for i, row := range t.Rows() {
		for j, v := range row {
			args[j] = v
		}
		_, err = insertStmt.ExecContext(ctx, args...)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting row %d: %v", i, err)
		}
	}
	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("committing transaction: %v", err)
	}
	return nil
}

func (db *DB) placeholder(i int) string {
	if db.driver == "postgres" {
		return fmt.Sprintf("$%d", i)
	}
	return "?"
}

func quote(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty identifier")
	}
	if strings.ContainsAny(name, `"`) {
		return "", fmt.Errorf(`identifier '%s' contains invalid character '"'`, name)
	}
	return fmt.Sprintf(`"%s"`, name), nil
}
