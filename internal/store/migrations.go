package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Detections table - one row per committed detection event
		`CREATE TABLE IF NOT EXISTS detections (
			id TEXT PRIMARY KEY,
			mudra TEXT NOT NULL,
			stable_frames INTEGER NOT NULL DEFAULT 0,
			detected_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Settings table - stores application settings as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Indexes for recency and per-mudra queries
		`CREATE INDEX IF NOT EXISTS idx_detections_detected_at ON detections(detected_at)`,
		`CREATE INDEX IF NOT EXISTS idx_detections_mudra ON detections(mudra)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
