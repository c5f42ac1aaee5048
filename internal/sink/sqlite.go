package sink

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"rfpulse/pkg/contracts/domain"
)

// WriteSQLite loads the unified table into an embedded SQLite database with
// replace semantics: an existing table of the same name is dropped first.
// With cfg.InMemory the database is transient, which is only useful for
// smoke-testing a sink configuration.
func WriteSQLite(cfg Config, records []domain.UnifiedRecord) error {
	dsn := cfg.Path
	if cfg.InMemory {
		dsn = ":memory:"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// cfg.Table is validated against the sqlite_ident character set before
	// it reaches this interpolation.
	if _, err := db.Exec(fmt.Sprintf(`DROP TABLE IF EXISTS %q`, cfg.Table)); err != nil {
		return fmt.Errorf("failed to drop existing table: %w", err)
	}

	create := fmt.Sprintf(`CREATE TABLE %q (
		id TEXT,
		session_id TEXT,
		composite_key TEXT,
		std_country TEXT,
		country_name TEXT,
		is_mobile TEXT,
		ui_element TEXT,
		timestamp TEXT,
		created_at TEXT,
		page_name TEXT,
		country_residency TEXT,
		important_score INTEGER,
		importance TEXT
	)`, cfg.Table)
	if _, err := db.Exec(create); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(fmt.Sprintf(
		`INSERT INTO %q VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, cfg.Table))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		_, err := stmt.Exec(
			r.ID, r.SessionID, r.CompositeKey, r.StdCountry, r.CountryName,
			r.IsMobile, r.UIElement,
			r.Timestamp.Format(domain.TimestampLayout),
			r.CreatedAt.Format(domain.TimestampLayout),
			r.PageName, r.CountryResidency, r.ImportantScore, r.Importance,
		)
		if err != nil {
			return fmt.Errorf("failed to insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
