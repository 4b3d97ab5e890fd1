package index

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"aafkit/internal/textutil"
)

const essenceNameSeparator = "\n"

// Files lists every indexed file, most recently indexed first.
func (s *Store) Files(ctx context.Context) ([]FileEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT f.id, f.path, f.run_id, f.product, f.vendor, f.indexed_at,
               c.name,
               (SELECT COUNT(1) FROM tracks t WHERE t.composition_id = c.id),
               (SELECT COUNT(1) FROM clips cl JOIN tracks t ON cl.track_id = t.id WHERE t.composition_id = c.id),
               (SELECT COUNT(1) FROM essences e WHERE e.file_id = f.id)
        FROM files f
        LEFT JOIN compositions c ON c.file_id = f.id
        ORDER BY f.indexed_at DESC, f.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	var entries []FileEntry
	for rows.Next() {
		var (
			entry       FileEntry
			product     sql.NullString
			vendor      sql.NullString
			indexedRaw  string
			composition sql.NullString
		)
		if err := rows.Scan(
			&entry.ID,
			&entry.Path,
			&entry.RunID,
			&product,
			&vendor,
			&indexedRaw,
			&composition,
			&entry.Tracks,
			&entry.Clips,
			&entry.Essences,
		); err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		entry.Product = product.String
		entry.Vendor = vendor.String
		entry.Composition = composition.String
		entry.IndexedAt = parseTime(indexedRaw)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate files: %w", err)
	}
	return entries, nil
}

// Search returns the clips whose name or essence names contain a token
// starting with every token of term. Matching is case-insensitive.
func (s *Store) Search(ctx context.Context, term string) ([]Hit, error) {
	tokens := textutil.Tokenize(term)
	if len(tokens) == 0 {
		return nil, nil
	}

	var b strings.Builder
	b.WriteString(`
        SELECT f.path, c.name, t.kind, t.number, cl.position, cl.length, cl.name, cl.essence_names
        FROM clips cl
        JOIN tracks t ON cl.track_id = t.id
        JOIN compositions c ON t.composition_id = c.id
        JOIN files f ON c.file_id = f.id
        WHERE 1 = 1`)
	args := make([]any, 0, len(tokens))
	for _, token := range tokens {
		b.WriteString(` AND cl.tokens LIKE ?`)
		args = append(args, "% "+token+"%")
	}
	b.WriteString(` ORDER BY f.path, t.kind, t.number, cl.position`)

	rows, err := s.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("search clips: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var (
			hit          Hit
			composition  sql.NullString
			clipName     sql.NullString
			essenceNames sql.NullString
		)
		if err := rows.Scan(
			&hit.Path,
			&composition,
			&hit.TrackKind,
			&hit.TrackNumber,
			&hit.Position,
			&hit.Length,
			&clipName,
			&essenceNames,
		); err != nil {
			return nil, fmt.Errorf("scan hit: %w", err)
		}
		hit.Composition = composition.String
		hit.ClipName = clipName.String
		if essenceNames.String != "" {
			hit.EssenceNames = strings.Split(essenceNames.String, essenceNameSeparator)
		}
		hits = append(hits, hit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hits: %w", err)
	}
	return hits, nil
}

// Remove deletes the record of path and reports whether one existed.
func (s *Store) Remove(ctx context.Context, path string) (bool, error) {
	unlock, err := s.acquire(ctx)
	if err != nil {
		return false, err
	}
	defer unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM files WHERE path = ?`, path)
	if err != nil {
		return false, fmt.Errorf("remove file: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func parseTime(raw string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
