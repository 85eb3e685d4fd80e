package store

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ijagberg/clichess/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS games (
	id        TEXT PRIMARY KEY,
	result    TEXT NOT NULL,
	final_fen TEXT NOT NULL,
	moves     TEXT NOT NULL,
	ended_at  TIMESTAMP NOT NULL
);`

// Store archives finished games in a sqlite database.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) SaveResult(r model.Result) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO games (id, result, final_fen, moves, ended_at) VALUES (?, ?, ?, ?, ?)`,
		r.GameID, r.Result, r.FinalFEN, strings.Join(r.Moves, " "), r.EndedAt,
	)
	if err != nil {
		return fmt.Errorf("save game %s: %w", r.GameID, err)
	}
	return nil
}

func (s *Store) Result(gameID string) (model.Result, error) {
	row := s.db.QueryRow(
		`SELECT id, result, final_fen, moves, ended_at FROM games WHERE id = ?`,
		gameID,
	)
	return scanResult(row)
}

// Recent returns up to n finished games, newest first.
func (s *Store) Recent(n int) ([]model.Result, error) {
	rows, err := s.db.Query(
		`SELECT id, result, final_fen, moves, ended_at FROM games ORDER BY ended_at DESC LIMIT ?`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent games: %w", err)
	}
	defer rows.Close()

	var results []model.Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (model.Result, error) {
	var r model.Result
	var moves string
	if err := row.Scan(&r.GameID, &r.Result, &r.FinalFEN, &moves, &r.EndedAt); err != nil {
		return model.Result{}, fmt.Errorf("scan game row: %w", err)
	}
	if moves != "" {
		r.Moves = strings.Split(moves, " ")
	}
	return r, nil
}
