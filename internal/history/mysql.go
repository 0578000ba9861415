package history

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"kts/internal/domain"
)

// Store keeps a row per suite run in MySQL so results can be compared
// across runs and machines.
type Store struct {
	dsn string
}

// NewStore creates a Store for the given MySQL DSN.
func NewStore(dsn string) *Store {
	return &Store{dsn: dsn}
}

const createTable = `
CREATE TABLE IF NOT EXISTS suite_runs (
	id INT AUTO_INCREMENT PRIMARY KEY,
	suite_path VARCHAR(255) NOT NULL,
	total_tests INT NOT NULL,
	passed_tests INT NOT NULL,
	failed_tests INT NOT NULL,
	errored_tests INT NOT NULL,
	duration_seconds DOUBLE NOT NULL,
	resiliency_score INT NOT NULL,
	healthy BOOL NOT NULL,
	ran_at VARCHAR(64) NOT NULL
)`

// Record inserts the run summary into the history table, creating it on
// first use.
func (s *Store) Record(summary *domain.RunSummary) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(createTable); err != nil {
		return fmt.Errorf("create history table: %w", err)
	}

	m := summary.Meta
	_, err = db.Exec(
		`INSERT INTO suite_runs
		(suite_path, total_tests, passed_tests, failed_tests, errored_tests, duration_seconds, resiliency_score, healthy, ran_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.SuitePath, m.TotalTests, m.PassedTests, m.FailedTests, m.ErroredTests,
		m.DurationSeconds, m.Score, m.Healthy, m.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first.
func (s *Store) List(limit int) ([]domain.RunMeta, error) {
	if limit <= 0 {
		limit = 10
	}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(
		`SELECT suite_path, total_tests, passed_tests, failed_tests, errored_tests, duration_seconds, resiliency_score, healthy, ran_at
		FROM suite_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.RunMeta
	for rows.Next() {
		var m domain.RunMeta
		if err := rows.Scan(&m.SuitePath, &m.TotalTests, &m.PassedTests, &m.FailedTests,
			&m.ErroredTests, &m.DurationSeconds, &m.Score, &m.Healthy, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, m)
	}
	return runs, rows.Err()
}

func (s *Store) open() (*sql.DB, error) {
	db, err := sql.Open("mysql", s.dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history database: %w", err)
	}
	return db, nil
}
