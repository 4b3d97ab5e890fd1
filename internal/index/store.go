package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"aafkit/internal/textutil"
)

const lockRetryDelay = 50 * time.Millisecond

// Store manages the catalogue database.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the catalogue at path and checks its
// schema version.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("index path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create index directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, lock: flock.New(path + ".lock")}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file.
func (s *Store) Path() string {
	return s.path
}

// Record stores rec, replacing any earlier record of the same path. It
// waits for the writer lock until ctx is done.
func (s *Store) Record(ctx context.Context, rec RunRecord) error {
	if strings.TrimSpace(rec.Path) == "" {
		return errors.New("record path is empty")
	}
	unlock, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if rec.IndexedAt.IsZero() {
		rec.IndexedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin record tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM files WHERE path = ?`, rec.Path); err != nil {
		return fmt.Errorf("delete previous record: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO files (path, run_id, product, vendor, indexed_at) VALUES (?, ?, ?, ?, ?)`,
		rec.Path,
		rec.RunID,
		nullableString(rec.Product),
		nullableString(rec.Vendor),
		rec.IndexedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert file: %w", err)
	}
	fileID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}

	comp := rec.Composition
	res, err = tx.ExecContext(ctx,
		`INSERT INTO compositions (file_id, name, edit_rate, start, length, sample_rate, sample_size)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		fileID,
		nullableString(comp.Name),
		nullableString(comp.EditRate),
		comp.Start,
		comp.Length,
		comp.SampleRate,
		comp.SampleSize,
	)
	if err != nil {
		return fmt.Errorf("insert composition: %w", err)
	}
	compositionID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}

	for _, track := range rec.Tracks {
		if err := insertTrack(ctx, tx, compositionID, track); err != nil {
			return err
		}
	}

	for _, ess := range rec.Essences {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO essences (
                file_id, kind, name, unique_name, type, embedded, path,
                channels, sample_rate, sample_size, length
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			fileID,
			ess.Kind,
			nullableString(ess.Name),
			nullableString(ess.UniqueName),
			nullableString(ess.Type),
			boolToInt(ess.Embedded),
			nullableString(ess.Path),
			ess.Channels,
			ess.SampleRate,
			ess.SampleSize,
			ess.Length,
		); err != nil {
			return fmt.Errorf("insert essence %q: %w", ess.UniqueName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit record: %w", err)
	}
	return nil
}

func (s *Store) acquire(ctx context.Context) (func(), error) {
	ok, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("acquire index lock: %w", err)
	}
	if !ok {
		return nil, errors.New("index lock is held by another process")
	}
	return func() { _ = s.lock.Unlock() }, nil
}

func insertTrack(ctx context.Context, tx *sql.Tx, compositionID int64, track TrackRecord) error {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO tracks (composition_id, kind, number, name, format) VALUES (?, ?, ?, ?, ?)`,
		compositionID,
		track.Kind,
		track.Number,
		nullableString(track.Name),
		nullableString(track.Format),
	)
	if err != nil {
		return fmt.Errorf("insert %s track %d: %w", track.Kind, track.Number, err)
	}
	trackID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}

	for _, clip := range track.Clips {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO clips (
                track_id, position, length, essence_offset, name, essence_names, tokens, mute
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			trackID,
			clip.Position,
			clip.Length,
			clip.EssenceOffset,
			nullableString(clip.Name),
			nullableString(strings.Join(clip.EssenceNames, essenceNameSeparator)),
			clipTokens(clip),
			boolToInt(clip.Mute),
		); err != nil {
			return fmt.Errorf("insert clip at %d on %s track %d: %w", clip.Position, track.Kind, track.Number, err)
		}
	}
	return nil
}

// clipTokens is the space-delimited search column. The leading and
// trailing spaces let Search anchor every term on a token boundary.
func clipTokens(clip ClipRecord) string {
	parts := append([]string{clip.Name}, clip.EssenceNames...)
	tokens := textutil.Tokenize(strings.Join(parts, " "))
	if len(tokens) == 0 {
		return ""
	}
	return " " + strings.Join(tokens, " ") + " "
}
