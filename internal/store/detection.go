package store

import (
	"database/sql"
	"errors"
	"time"
)

// Detection represents a committed detection event stored in the database.
type Detection struct {
	ID           string
	Mudra        string
	StableFrames int
	DetectedAt   time.Time
}

// DetectionRepository provides operations for detection events.
type DetectionRepository struct {
	db *sql.DB
}

// Detections returns the detection repository for this store.
func (s *Store) Detections() *DetectionRepository {
	return &DetectionRepository{db: s.db}
}

// Create inserts a new detection event into the database.
func (r *DetectionRepository) Create(d *Detection) error {
	if d.DetectedAt.IsZero() {
		d.DetectedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO detections (id, mudra, stable_frames, detected_at)
		 VALUES (?, ?, ?, ?)`,
		d.ID, d.Mudra, d.StableFrames, d.DetectedAt,
	)
	return err
}

// GetByID retrieves a detection event by its ID.
func (r *DetectionRepository) GetByID(id string) (*Detection, error) {
	d := &Detection{}

	err := r.db.QueryRow(
		`SELECT id, mudra, stable_frames, detected_at
		 FROM detections WHERE id = ?`,
		id,
	).Scan(&d.ID, &d.Mudra, &d.StableFrames, &d.DetectedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return d, nil
}

// ListRecent retrieves the most recent detection events, newest first.
// A limit of 0 or less returns all events.
func (r *DetectionRepository) ListRecent(limit int) ([]*Detection, error) {
	query := `SELECT id, mudra, stable_frames, detected_at
		 FROM detections ORDER BY detected_at DESC, id DESC`

	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = r.db.Query(query+` LIMIT ?`, limit)
	} else {
		rows, err = r.db.Query(query)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var detections []*Detection
	for rows.Next() {
		d := &Detection{}
		if err := rows.Scan(&d.ID, &d.Mudra, &d.StableFrames, &d.DetectedAt); err != nil {
			return nil, err
		}
		detections = append(detections, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return detections, nil
}

// CountByMudra returns the number of recorded detections per mudra name.
func (r *DetectionRepository) CountByMudra() (map[string]int64, error) {
	rows, err := r.db.Query(
		`SELECT mudra, COUNT(*) FROM detections GROUP BY mudra`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var mudra string
		var count int64
		if err := rows.Scan(&mudra, &count); err != nil {
			return nil, err
		}
		counts[mudra] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// Count returns the total number of recorded detection events.
func (r *DetectionRepository) Count() (int64, error) {
	var count int64
	err := r.db.QueryRow(`SELECT COUNT(*) FROM detections`).Scan(&count)
	return count, err
}

// DeleteAll removes every detection event from the database.
func (r *DetectionRepository) DeleteAll() error {
	_, err := r.db.Exec(`DELETE FROM detections`)
	return err
}
