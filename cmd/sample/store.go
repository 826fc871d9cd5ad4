package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"slices"

	_ "modernc.org/sqlite"

	"github.com/ryancerium/scarp"
)

// Tags of the catalogue's values.
type (
	RouteID    struct{}
	Meter      struct{}
	RouteName  struct{}
	UnitSymbol struct{}
	Count      struct{}
)

// Route is one stored route.
type Route struct {
	ID       scarp.Int64[RouteID]     `json:"id"`
	Name     scarp.String[RouteName]  `json:"name"`
	Distance scarp.Decimal[Meter]     `json:"distance"`
	Unit     scarp.String[UnitSymbol] `json:"unit"`
	Climb    *scarp.Float64[Meter]    `json:"climb,omitempty"`
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoute(row rowScanner) (Route, error) {
	var (
		r     Route
		climb sql.Null[scarp.Float64[Meter]]
	)
	if err := row.Scan(&r.ID, &r.Name, &r.Distance, &r.Unit, &climb); err != nil {
		return Route{}, err
	}
	if climb.Valid {
		r.Climb = &climb.V
	}
	return r, nil
}

type notFoundError struct{ id scarp.Int64[RouteID] }

func (e notFoundError) Error() string   { return fmt.Sprintf("route %s not found", e.id) }
func (e notFoundError) StatusCode() int { return http.StatusNotFound }

// routeStore keeps routes in SQLite. Every column is read and written through
// the scarp Value and Scan methods.
type routeStore struct {
	db *sql.DB
}

func openStore(ctx context.Context, path string) (*routeStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// An in-memory database exists per connection.
	db.SetMaxOpenConns(1)

	const schema = `CREATE TABLE IF NOT EXISTS routes (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		name     TEXT NOT NULL,
		distance TEXT NOT NULL,
		unit     TEXT NOT NULL,
		climb    REAL
	)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &routeStore{db: db}, nil
}

func (s *routeStore) Close() error { return s.db.Close() }

func (s *routeStore) create(ctx context.Context, r Route) (Route, error) {
	var climb any
	if r.Climb != nil {
		climb = *r.Climb
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO routes (name, distance, unit, climb) VALUES (?, ?, ?, ?)`,
		r.Name, r.Distance, r.Unit, climb)
	if err != nil {
		return Route{}, fmt.Errorf("insert route: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Route{}, fmt.Errorf("insert route: %w", err)
	}
	r.ID = scarp.NewInt64[RouteID](id)
	return r, nil
}

func (s *routeStore) get(ctx context.Context, id scarp.Int64[RouteID]) (Route, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, distance, unit, climb FROM routes WHERE id = ?`, id)

	r, err := scanRoute(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Route{}, notFoundError{id: id}
	}
	if err != nil {
		return Route{}, fmt.Errorf("get route %s: %w", id, err)
	}
	return r, nil
}

// list returns routes at least minDistance long, shortest first. Distances
// are compared as decimals in Go since SQLite would compare the stored text.
func (s *routeStore) list(ctx context.Context, minDistance scarp.Decimal[Meter], limit scarp.Uint32[Count]) ([]Route, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, distance, unit, climb FROM routes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	defer rows.Close()

	routes := []Route{}
	for rows.Next() {
		r, err := scanRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("list routes: %w", err)
		}
		if r.Distance.GreaterOrEqual(minDistance) {
			routes = append(routes, r)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}

	slices.SortStableFunc(routes, func(a, b Route) int { return a.Distance.Compare(b.Distance) })
	if n := int(limit.Raw()); n > 0 && len(routes) > n {
		routes = routes[:n]
	}
	return routes, nil
}

func (s *routeStore) delete(ctx context.Context, id scarp.Int64[RouteID]) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM routes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete route %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete route %s: %w", id, err)
	}
	if n == 0 {
		return notFoundError{id: id}
	}
	return nil
}
