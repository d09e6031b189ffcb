package archive

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"

	"trp/internal/config"
	"trp/internal/logging"
	"trp/internal/storage"
)

// Exporter copies persisted test results into a MySQL table for cross-run
// trend queries. The file store stays canonical; the archive is an export
// sink only, and re-exporting the same result id is a no-op.
type Exporter struct {
	config  *config.Config
	storage storage.Storage
	log     *logging.Logger
}

// NewExporter creates an Exporter.
func NewExporter(cfg *config.Config, st storage.Storage, log *logging.Logger) *Exporter {
	return &Exporter{config: cfg, storage: st, log: log}
}

// Export connects using env-derived settings, ensures the archive table
// exists and inserts every persisted result. Returns the number of newly
// archived rows.
func (e *Exporter) Export() (int, error) {
	e.config.LoadEnv()

	db, err := sql.Open("mysql", e.config.GetArchiveDSN())
	if err != nil {
		return 0, fmt.Errorf("connect to archive database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return 0, fmt.Errorf("ping archive database: %w", err)
	}

	table := config.DefaultArchiveTable
	if !isValidTableName(table) {
		return 0, fmt.Errorf("invalid archive table name: %s", table)
	}
	if err := e.ensureTable(db, table); err != nil {
		return 0, err
	}

	results := e.storage.GetAllTestResults()
	stmt, err := db.Prepare(fmt.Sprintf(
		"INSERT IGNORE INTO `%s` (id, test_case_id, module_id, status, timestamp, execution_time, error_details, diagnosis) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		table,
	))
	if err != nil {
		return 0, fmt.Errorf("prepare archive insert: %w", err)
	}
	defer stmt.Close()

	archived := 0
	for _, r := range results {
		res, err := stmt.Exec(
			r.ID, r.TestCaseID, r.ModuleID, string(r.Status),
			r.Timestamp.Time, r.ExecutionTime, r.ErrorDetails, r.Diagnosis,
		)
		if err != nil {
			return archived, fmt.Errorf("archive result %s: %w", r.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			archived++
		}
	}
	e.log.Info("archive export complete", "results", len(results), "archived", archived)
	return archived, nil
}

// ensureTable creates the archive table if it does not exist.
func (e *Exporter) ensureTable(db *sql.DB, table string) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS `+"`%s`"+` (
		id VARCHAR(64) PRIMARY KEY,
		test_case_id VARCHAR(64) NOT NULL,
		module_id VARCHAR(64) NOT NULL,
		status VARCHAR(16) NOT NULL,
		timestamp DATETIME(6) NOT NULL,
		execution_time DOUBLE NOT NULL,
		error_details TEXT,
		diagnosis TEXT,
		INDEX idx_test_case (test_case_id),
		INDEX idx_module (module_id)
	)`, table)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("create archive table %s: %w", table, err)
	}
	return nil
}

// isValidTableName validates the table name (basic check).
func isValidTableName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	for _, r := range name {
		if r != '_' && !('a' <= r && r <= 'z') && !('A' <= r && r <= 'Z') && !('0' <= r && r <= '9') {
			return false
		}
	}
	return !strings.HasPrefix(name, "_")
}
