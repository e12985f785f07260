package archive

import (
	"database/sql"
	"embed"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const maxSessions = 500

// Store persists interview session archives to PostgreSQL. The archive is
// optional observability; the JSON evaluation artifact remains the durable
// output of record.
type Store struct {
	db *sql.DB
}

// Open connects to the archive database at connStr and applies migrations.
func Open(connStr string) (*Store, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("archive open: %w", err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive ping: %w", err)
	}
	if err = migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive migrate: %w", err)
	}
	return &Store{db: db}, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`)
	if err != nil {
		return err
	}

	var current int
	row := db.QueryRow(`SELECT COALESCE(MAX(version), -1) FROM schema_version`)
	if err = row.Scan(&current); err != nil {
		return err
	}

	entries, err := migrationFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	for i := current + 1; i < len(entries); i++ {
		data, readErr := migrationFS.ReadFile("migrations/" + entries[i].Name())
		if readErr != nil {
			return fmt.Errorf("read migration %d: %w", i, readErr)
		}
		if _, execErr := db.Exec(string(data)); execErr != nil {
			return fmt.Errorf("migration %d: %w", i, execErr)
		}
		if _, execErr := db.Exec(`INSERT INTO schema_version (version) VALUES ($1)`, i); execErr != nil {
			return fmt.Errorf("migration %d record: %w", i, execErr)
		}
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateSession inserts a new interview session and prunes old ones.
func (s *Store) CreateSession(id, candidate, position string) error {
	_, err := s.db.Exec(
		`INSERT INTO interview_sessions (id, candidate, position, started_at) VALUES ($1, $2, $3, $4)`,
		id, candidate, position, time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`DELETE FROM interview_sessions WHERE id NOT IN (SELECT id FROM interview_sessions ORDER BY started_at DESC LIMIT $1)`,
		maxSessions,
	)
	return err
}

// EndSession stamps the session's end time and final candidate identity.
func (s *Store) EndSession(id, candidate, position string) error {
	_, err := s.db.Exec(
		`UPDATE interview_sessions SET ended_at = $1, candidate = $2, position = $3 WHERE id = $4`,
		time.Now().UTC(), candidate, position, id,
	)
	return err
}

// AddUtterance appends one transcript line to the session archive.
func (s *Store) AddUtterance(u Utterance) error {
	_, err := s.db.Exec(
		`INSERT INTO utterances (id, session_id, speaker, text, spoken_at) VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.SessionID, u.Speaker, u.Text, u.SpokenAt.UTC(),
	)
	return err
}

// AddEvaluation records the outcome of the evaluation run for a session.
func (s *Store) AddEvaluation(e Evaluation) error {
	_, err := s.db.Exec(
		`INSERT INTO evaluations (id, session_id, decision, role_fit, artifact_path, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.SessionID, e.Decision, e.RoleFit, e.ArtifactPath, e.Status, time.Now().UTC(),
	)
	return err
}

// GetSession returns one archived session with its utterances.
func (s *Store) GetSession(id string) (*Session, []Utterance, error) {
	var sess Session
	var endedAt sql.NullTime
	err := s.db.QueryRow(
		`SELECT id, candidate, position, started_at, ended_at FROM interview_sessions WHERE id = $1`, id,
	).Scan(&sess.ID, &sess.Candidate, &sess.Position, &sess.StartedAt, &endedAt)
	if err != nil {
		return nil, nil, err
	}
	if endedAt.Valid {
		sess.EndedAt = &endedAt.Time
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, speaker, text, spoken_at FROM utterances WHERE session_id = $1 ORDER BY spoken_at ASC`,
		id,
	)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var utts []Utterance
	for rows.Next() {
		var u Utterance
		if err = rows.Scan(&u.ID, &u.SessionID, &u.Speaker, &u.Text, &u.SpokenAt); err != nil {
			return nil, nil, err
		}
		utts = append(utts, u)
	}
	return &sess, utts, rows.Err()
}
