package recorder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"GoldSentinel/internal/logger"
)

var _ Recorder = (*SQLiteRecorder)(nil)

// SQLiteRecorder persists polled data to a SQLite database.
type SQLiteRecorder struct {
	db  *sqlx.DB
	mu  sync.Mutex
	log *logger.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL lets dashboards read while the poller writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: logger.Get().With("component", "recorder")}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.log.Infof("sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS price_ticks (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			source    TEXT,
			symbol    TEXT,
			price     REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_price_ts ON price_ticks(timestamp)`,

		`CREATE TABLE IF NOT EXISTS exchange_rates (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			from_currency TEXT,
			to_currency   TEXT,
			rate          REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rate_ts ON exchange_rates(timestamp)`,

		`CREATE TABLE IF NOT EXISTS predictions (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			next_day         TEXT NOT NULL UNIQUE,
			predicted_price  REAL,
			current_price    REAL,
			method           TEXT,
			r2_score         REAL,
			average_accuracy REAL
		)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func unixOrNow(t time.Time) int64 {
	if t.IsZero() {
		return time.Now().Unix()
	}
	return t.Unix()
}

func (r *SQLiteRecorder) RecordPriceTick(t *PriceTick) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO price_ticks (timestamp, source, symbol, price) VALUES (?,?,?,?)`,
		unixOrNow(t.At), t.Source, t.Symbol, t.Price,
	)
	return err
}

func (r *SQLiteRecorder) RecordExchangeRate(evt *RateEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO exchange_rates (timestamp, from_currency, to_currency, rate) VALUES (?,?,?,?)`,
		unixOrNow(evt.At), evt.From, evt.To, evt.Rate,
	)
	return err
}

// RecordPrediction stores one row per forecast day; a revised forecast for
// the same day replaces the earlier one.
func (r *SQLiteRecorder) RecordPrediction(evt *PredictionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO predictions
		(timestamp, next_day, predicted_price, current_price, method, r2_score, average_accuracy)
		VALUES (?,?,?,?,?,?,?)
		ON CONFLICT(next_day) DO UPDATE SET
			timestamp = excluded.timestamp,
			predicted_price = excluded.predicted_price,
			current_price = excluded.current_price,
			method = excluded.method,
			r2_score = excluded.r2_score,
			average_accuracy = excluded.average_accuracy`,
		unixOrNow(evt.At), evt.NextDay, evt.PredictedPrice, evt.CurrentPrice,
		evt.Method, evt.R2Score, evt.AverageAccuracy,
	)
	return err
}

type predictionRow struct {
	Timestamp       int64   `db:"timestamp"`
	NextDay         string  `db:"next_day"`
	PredictedPrice  float64 `db:"predicted_price"`
	CurrentPrice    float64 `db:"current_price"`
	Method          string  `db:"method"`
	R2Score         float64 `db:"r2_score"`
	AverageAccuracy float64 `db:"average_accuracy"`
}

func (r *SQLiteRecorder) RecentPredictions(ctx context.Context, limit int) ([]PredictionEvent, error) {
	var rows []predictionRow
	err := r.db.SelectContext(ctx, &rows, `SELECT timestamp, next_day, predicted_price, current_price,
			COALESCE(method, '') AS method, r2_score, average_accuracy
		FROM predictions ORDER BY next_day DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("select predictions: %w", err)
	}
	events := make([]PredictionEvent, len(rows))
	for i, row := range rows {
		events[i] = PredictionEvent{
			NextDay:         row.NextDay,
			PredictedPrice:  row.PredictedPrice,
			CurrentPrice:    row.CurrentPrice,
			Method:          row.Method,
			R2Score:         row.R2Score,
			AverageAccuracy: row.AverageAccuracy,
			At:              time.Unix(row.Timestamp, 0),
		}
	}
	return events, nil
}

func (r *SQLiteRecorder) Close() error {
	r.log.Infof("closing sqlite recorder")
	return r.db.Close()
}
