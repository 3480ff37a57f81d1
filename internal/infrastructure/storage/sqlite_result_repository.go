package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"bottle-counter/internal/domain/entity"
	"bottle-counter/internal/domain/port"
)

// SQLiteResultRepository хранит результаты прогонов видео в SQLite
type SQLiteResultRepository struct {
	db *sql.DB
}

// NewSQLiteResultRepository открывает базу и создаёт таблицы при необходимости
func NewSQLiteResultRepository(path string) (*SQLiteResultRepository, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	repo := &SQLiteResultRepository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return repo, nil
}

func (r *SQLiteResultRepository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source TEXT NOT NULL,
		started_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS circles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL,
		frame INTEGER NOT NULL,
		method TEXT NOT NULL,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		radius REAL NOT NULL,
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_circles_run_frame ON circles(run_id, frame);
	`

	_, err := r.db.Exec(schema)
	return err
}

// BeginRun регистрирует новый прогон и возвращает его ID
func (r *SQLiteResultRepository) BeginRun(ctx context.Context, source string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO runs (source, started_at) VALUES (?, ?)`, source, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	return res.LastInsertId()
}

// SaveFrame сохраняет все окружности одного кадра в одной транзакции
func (r *SQLiteResultRepository) SaveFrame(ctx context.Context, runID int64, frame int, result *entity.FrameResult) error {
	if result.Count() == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO circles (run_id, frame, method, x, y, radius)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range result.Circles {
		if _, err := stmt.ExecContext(ctx, runID, frame, string(result.Method), c.X, c.Y, c.Radius); err != nil {
			return fmt.Errorf("insert circle: %w", err)
		}
	}

	return tx.Commit()
}

// CountByRun возвращает общее количество окружностей в прогоне
func (r *SQLiteResultRepository) CountByRun(ctx context.Context, runID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM circles WHERE run_id = ?`, runID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count circles: %w", err)
	}
	return count, nil
}

// Close закрывает соединение с базой
func (r *SQLiteResultRepository) Close() error {
	return r.db.Close()
}

// Проверка реализации интерфейса
var _ port.ResultRepository = (*SQLiteResultRepository)(nil)
