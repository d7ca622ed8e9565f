package services

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/censustat/popestat/pkg/popestat"
)

// fakeConn is an in-memory DBConnection for unit tests. Exec errors are
// scripted per 0-based call index; QueryRow hands out queued fakeRows.
type fakeConn struct {
	execSQL  []string
	execArgs [][]any
	execErrs map[int]error

	querySQL []string
	rows     []*fakeRow
}

func (f *fakeConn) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	idx := len(f.execSQL)
	f.execSQL = append(f.execSQL, sql)
	f.execArgs = append(f.execArgs, args)
	if err := f.execErrs[idx]; err != nil {
		return pgconn.CommandTag{}, err
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeConn) QueryRow(ctx context.Context, sql string, args ...any) popestat.Row {
	f.querySQL = append(f.querySQL, sql)
	if len(f.rows) == 0 {
		return &fakeRow{}
	}
	row := f.rows[0]
	f.rows = f.rows[1:]
	return row
}

// fakeRow copies scripted values into Scan destinations. A nil value
// stands for SQL NULL and leaves the destination pointer nil, matching
// pgx's treatment of pointer destinations.
type fakeRow struct {
	vals []any
	err  error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		if i >= len(r.vals) || r.vals[i] == nil {
			continue
		}
		switch p := d.(type) {
		case **int64:
			v := r.vals[i].(int64)
			*p = &v
		case **float64:
			v := r.vals[i].(float64)
			*p = &v
		}
	}
	return nil
}

var _ popestat.DBConnection = (*fakeConn)(nil)
