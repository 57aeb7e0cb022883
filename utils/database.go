package utils

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

var db *sql.DB

// InitDB opens the shared connection pool and creates the tasks table if
// it does not exist yet. Called once at process start; CloseDB releases
// the pool at shutdown.
func InitDB(path string) error {
	var err error
	db, err = sql.Open("sqlite", path)
	if err != nil {
		return err
	}

	query := `
	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		status TEXT NOT NULL,
		due_date TEXT,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_status ON tasks(status);
	`
	_, err = db.Exec(query)
	return err
}

func CloseDB() {
	db.Close()
}

func GetDB() *sql.DB {
	return db
}
