package zombiezen

import (
	"context"
	"fmt"
	"strings"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/adpos/adposition"
	"github.com/revelaction/adpos/compare"
	"github.com/revelaction/adpos/corpus"
	"github.com/revelaction/adpos/stat"
	"github.com/revelaction/adpos/storage"
)

// Store keeps all artifacts as tables of one SQLite database.
type Store struct {
	pool *sqlitex.Pool
}

var _ storage.Repository = (*Store)(nil)

// NewStore creates the tables if needed.
func NewStore(pool *sqlitex.Pool) (*Store, error) {
	if err := CreateSchemas(pool, ResultsSchema); err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// columns returns the adposition columns, with suffix, in report order.
func columns(suffix string) []string {
	cols := make([]string, 0, len(adposition.All()))
	for _, a := range adposition.All() {
		cols = append(cols, string(a)+suffix)
	}
	return cols
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func notFound(table, step string) error {
	return fmt.Errorf("table %s is empty, run adpos %s first", table, step)
}

func (s *Store) Records() ([]corpus.Record, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	query := "SELECT id, author, title, year, grp, path, word_count, token_count, " +
		strings.Join(columns(""), ", ") + " FROM records ORDER BY id"

	var records []corpus.Record
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			g, err := corpus.ParseGroup(stmt.ColumnText(4))
			if err != nil {
				return err
			}
			rec := corpus.Record{
				Id:         stmt.ColumnInt(0),
				Author:     stmt.ColumnText(1),
				Title:      stmt.ColumnText(2),
				Year:       stmt.ColumnInt(3),
				Group:      g,
				Path:       stmt.ColumnText(5),
				WordCount:  stmt.ColumnInt(6),
				TokenCount: stmt.ColumnInt(7),
				Counts:     adposition.NewCounts(),
			}
			for i, a := range adposition.All() {
				rec.Counts[a] = stmt.ColumnInt(8 + i)
			}
			records = append(records, rec)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, notFound("records", "extract")
	}
	return records, nil
}

func (s *Store) WriteRecords(records []corpus.Record) (err error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	if err = sqlitex.Execute(conn, "DELETE FROM records", nil); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}

	query := "INSERT INTO records (id, author, title, year, grp, path, word_count, token_count, " +
		strings.Join(columns(""), ", ") + ") VALUES (" + placeholders(8+len(adposition.All())) + ")"

	for _, rec := range records {
		args := []interface{}{rec.Id, rec.Author, rec.Title, rec.Year, string(rec.Group), rec.Path, rec.WordCount, rec.TokenCount}
		for _, a := range adposition.All() {
			args = append(args, rec.Counts[a])
		}
		err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{Args: args})
		if err != nil {
			return fmt.Errorf("failed to insert record %s: %w", rec.Name(), err)
		}
	}

	return nil
}

// Rates joins the stored rates with their records.
func (s *Store) Rates() ([]stat.DocRate, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	n := len(adposition.All())
	cols := make([]string, 0, 2*n)
	for _, c := range columns("") {
		cols = append(cols, "r."+c)
	}
	for _, c := range columns("") {
		cols = append(cols, "n."+c)
	}

	query := "SELECT r.id, r.author, r.title, r.year, r.grp, r.path, r.word_count, r.token_count, " +
		strings.Join(cols, ", ") + " FROM rates n JOIN records r ON r.id = n.doc_id ORDER BY r.id"

	var docs []stat.DocRate
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			g, err := corpus.ParseGroup(stmt.ColumnText(4))
			if err != nil {
				return err
			}
			d := stat.DocRate{
				Record: corpus.Record{
					Id:         stmt.ColumnInt(0),
					Author:     stmt.ColumnText(1),
					Title:      stmt.ColumnText(2),
					Year:       stmt.ColumnInt(3),
					Group:      g,
					Path:       stmt.ColumnText(5),
					WordCount:  stmt.ColumnInt(6),
					TokenCount: stmt.ColumnInt(7),
					Counts:     adposition.NewCounts(),
				},
				Rates: make(adposition.Rates, n),
			}
			for i, a := range adposition.All() {
				d.Counts[a] = stmt.ColumnInt(8 + i)
				d.Rates[a] = stmt.ColumnFloat(8 + n + i)
			}
			docs = append(docs, d)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, notFound("rates", "normalize")
	}
	return docs, nil
}

// WriteRates stores the rates of docs. Their records must have been
// written before.
func (s *Store) WriteRates(docs []stat.DocRate) (err error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	if err = sqlitex.Execute(conn, "DELETE FROM rates", nil); err != nil {
		return fmt.Errorf("failed to clear rates: %w", err)
	}

	query := "INSERT INTO rates (doc_id, " + strings.Join(columns(""), ", ") +
		") VALUES (" + placeholders(1+len(adposition.All())) + ")"

	for _, d := range docs {
		args := []interface{}{d.Id}
		for _, a := range adposition.All() {
			args = append(args, d.Rates[a])
		}
		err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{Args: args})
		if err != nil {
			return fmt.Errorf("failed to insert rates of %s: %w", d.Name(), err)
		}
	}

	return nil
}

func (s *Store) Aggregates() ([]stat.Aggregate, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	n := len(adposition.All())
	query := "SELECT kind, name, grp, num_docs, total_words, " +
		strings.Join(columns("_count"), ", ") + ", " +
		strings.Join(columns("_rate"), ", ") + " FROM aggregates ORDER BY seq"

	var aggs []stat.Aggregate
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			g, err := corpus.ParseGroup(stmt.ColumnText(2))
			if err != nil {
				return err
			}
			agg := stat.Aggregate{
				Kind:       stat.Kind(stmt.ColumnText(0)),
				Name:       stmt.ColumnText(1),
				Group:      g,
				NumDocs:    stmt.ColumnInt(3),
				TotalWords: stmt.ColumnInt(4),
				Counts:     adposition.NewCounts(),
				Rates:      make(adposition.Rates, n),
			}
			for i, a := range adposition.All() {
				agg.Counts[a] = stmt.ColumnInt(5 + i)
				agg.Rates[a] = stmt.ColumnFloat(5 + n + i)
			}
			aggs = append(aggs, agg)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	if len(aggs) == 0 {
		return nil, notFound("aggregates", "normalize")
	}
	return aggs, nil
}

func (s *Store) WriteAggregates(aggs []stat.Aggregate) (err error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	if err = sqlitex.Execute(conn, "DELETE FROM aggregates", nil); err != nil {
		return fmt.Errorf("failed to clear aggregates: %w", err)
	}

	n := len(adposition.All())
	query := "INSERT INTO aggregates (seq, kind, name, grp, num_docs, total_words, " +
		strings.Join(columns("_count"), ", ") + ", " +
		strings.Join(columns("_rate"), ", ") + ") VALUES (" + placeholders(6+2*n) + ")"

	for i, agg := range aggs {
		args := []interface{}{i, string(agg.Kind), agg.Name, string(agg.Group), agg.NumDocs, agg.TotalWords}
		for _, a := range adposition.All() {
			args = append(args, agg.Counts[a])
		}
		for _, a := range adposition.All() {
			args = append(args, agg.Rates[a])
		}
		err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{Args: args})
		if err != nil {
			return fmt.Errorf("failed to insert aggregate %s: %w", agg.Name, err)
		}
	}

	return nil
}

func (s *Store) Comparison() ([]compare.Row, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	query := "SELECT kind, a, b, adposition, rate_a, rate_b, difference, ratio, level, p_value, significant " +
		"FROM comparison ORDER BY seq"

	var rows []compare.Row
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			a, err := adposition.Parse(stmt.ColumnText(3))
			if err != nil {
				return err
			}
			rows = append(rows, compare.Row{
				Kind:        stat.Kind(stmt.ColumnText(0)),
				A:           stmt.ColumnText(1),
				B:           stmt.ColumnText(2),
				Adposition:  a,
				RateA:       stmt.ColumnFloat(4),
				RateB:       stmt.ColumnFloat(5),
				Difference:  stmt.ColumnFloat(6),
				Ratio:       nullFloat(stmt, 7),
				Level:       compare.Level(stmt.ColumnText(8)),
				PValue:      nullFloat(stmt, 9),
				Significant: stmt.ColumnInt(10) != 0,
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, notFound("comparison", "compare")
	}
	return rows, nil
}

func (s *Store) WriteComparison(rows []compare.Row) (err error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	if err = sqlitex.Execute(conn, "DELETE FROM comparison", nil); err != nil {
		return fmt.Errorf("failed to clear comparison: %w", err)
	}

	query := "INSERT INTO comparison (seq, kind, a, b, adposition, rate_a, rate_b, difference, ratio, level, p_value, significant) " +
		"VALUES (" + placeholders(12) + ")"

	for i, r := range rows {
		significant := 0
		if r.Significant {
			significant = 1
		}
		err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []interface{}{
				i, string(r.Kind), r.A, r.B, string(r.Adposition),
				r.RateA, r.RateB, r.Difference, nullable(r.Ratio),
				string(r.Level), nullable(r.PValue), significant,
			},
		})
		if err != nil {
			return fmt.Errorf("failed to insert comparison of %s: %w", r.Adposition, err)
		}
	}

	return nil
}

func nullFloat(stmt *sqlite.Stmt, col int) *float64 {
	if stmt.ColumnType(col) == sqlite.TypeNull {
		return nil
	}
	v := stmt.ColumnFloat(col)
	return &v
}

// nullable binds a nil pointer as NULL.
func nullable(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
