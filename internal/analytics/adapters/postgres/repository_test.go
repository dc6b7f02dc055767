package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"
)

// fakeRowScanner implements RowScanner for tests.
type fakeRowScanner struct {
	rows []fakeRow
	i    int
	err  error
}

type fakeRow struct {
	values []any
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row.values) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *int:
			v, ok := row.values[i].(int)
			if !ok {
				return errors.New("type assertion to int failed")
			}
			*d = v
		case *string:
			v, ok := row.values[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = v
		case *bool:
			v, ok := row.values[i].(bool)
			if !ok {
				return errors.New("type assertion to bool failed")
			}
			*d = v
		case *time.Time:
			v, ok := row.values[i].(time.Time)
			if !ok {
				return errors.New("type assertion to time.Time failed")
			}
			*d = v
		case *sql.NullFloat64:
			switch v := row.values[i].(type) {
			case nil:
				*d = sql.NullFloat64{}
			case float64:
				*d = sql.NullFloat64{Float64: v, Valid: true}
			default:
				return errors.New("type assertion to NullFloat64 failed")
			}
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	return nil
}

// fakeDB implements DB and records the last query.
type fakeDB struct {
	scanner   RowScanner
	queryErr  error
	lastQuery string
	lastArgs  []any
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.lastQuery = query
	f.lastArgs = args
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.scanner, nil
}

func eventRow(viewID string, slideIndex int, duration any, startedAt time.Time) fakeRow {
	return fakeRow{values: []any{
		"link-1",          // link_id
		viewID,            // view_id
		slideIndex,        // slide_index
		"Intro",           // slide_title
		duration,          // duration_seconds
		startedAt,         // started_at
		"Jordan Shaw",     // recipient_name
		"jordan@acme.com", // recipient_email
		"desktop",         // device_type
		true,              // is_unique_visitor
	}}
}

func TestListViewEvents_MapsRows(t *testing.T) {
	started := time.Date(2026, 8, 19, 14, 30, 0, 0, time.UTC)
	db := &fakeDB{
		scanner: &fakeRowScanner{rows: []fakeRow{
			eventRow("v1", 0, 12.5, started),
			eventRow("v1", 1, nil, started),
		}},
	}

	repo := NewViewEventRepository(db)

	events, err := repo.ListViewEvents(context.Background(), "prop-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	if !strings.Contains(db.lastQuery, "FROM view_events") {
		t.Fatalf("unexpected query: %s", db.lastQuery)
	}
	if len(db.lastArgs) != 1 || db.lastArgs[0] != "prop-1" {
		t.Fatalf("unexpected args: %v", db.lastArgs)
	}

	if events[0].Duration == nil || *events[0].Duration != 12.5 {
		t.Fatalf("expected duration 12.5, got %+v", events[0].Duration)
	}
	if events[1].Duration != nil {
		t.Fatalf("expected nil duration for unmeasured row, got %v", *events[1].Duration)
	}
	if events[0].DeviceType != "desktop" {
		t.Fatalf("expected device desktop, got %q", events[0].DeviceType)
	}
	if !events[0].IsUniqueVisitor {
		t.Fatal("expected unique visitor flag mapped")
	}
}

func TestListViewEvents_QueryError(t *testing.T) {
	db := &fakeDB{queryErr: errors.New("connection refused")}
	repo := NewViewEventRepository(db)

	events, err := repo.ListViewEvents(context.Background(), "prop-1")
	if err == nil {
		t.Fatal("expected error")
	}
	if events != nil {
		t.Fatal("expected nil events on error")
	}
}

func TestListViewEvents_RowsErr(t *testing.T) {
	db := &fakeDB{scanner: &fakeRowScanner{err: errors.New("read error")}}
	repo := NewViewEventRepository(db)

	_, err := repo.ListViewEvents(context.Background(), "prop-1")
	if err == nil || err.Error() != "read error" {
		t.Fatalf("expected rows error surfaced, got %v", err)
	}
}

func TestCountSlides(t *testing.T) {
	db := &fakeDB{
		scanner: &fakeRowScanner{rows: []fakeRow{{values: []any{7}}}},
	}
	repo := NewViewEventRepository(db)

	count, err := repo.CountSlides(context.Background(), "prop-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 7 {
		t.Fatalf("expected 7 slides, got %d", count)
	}
	if !strings.Contains(db.lastQuery, "FROM proposal_slides") {
		t.Fatalf("unexpected query: %s", db.lastQuery)
	}
}

func TestCountSlides_NoRows(t *testing.T) {
	db := &fakeDB{scanner: &fakeRowScanner{}}
	repo := NewViewEventRepository(db)

	count, err := repo.CountSlides(context.Background(), "prop-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0, got %d", count)
	}
}
