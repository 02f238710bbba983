package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/vidmeta"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ vidmeta.RecordService = (*RecordService)(nil)

// RecordService implements vidmeta.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// hashRecord computes xxHash over the record's canonical fields and returns
// a hex string. Re-extracting an unchanged page yields the same hash.
func hashRecord(rec *vidmeta.Record) string {
	var h xxhash.Digest
	for _, field := range []string{
		rec.ID,
		rec.MediaURL,
		rec.Title,
		rec.Description,
		strconv.Itoa(rec.DurationSeconds),
		rec.UploadDate,
		rec.ThumbnailURL,
	} {
		_, _ = h.WriteString(field)
		_, _ = h.WriteString("\x00")
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h.Sum64())
	return hex.EncodeToString(b)
}

const recordColumns = `id, source_url, video_id, media_url, title, description, duration_seconds, upload_date, thumbnail_url, content_hash, fetched_at`

// SaveRecord creates a stored record, or replaces the existing one for the
// same source URL (keeping its row id).
func (s *RecordService) SaveRecord(ctx context.Context, rec *vidmeta.StoredRecord) error {
	rec.ContentHash = hashRecord(&rec.Record)
	rec.FetchedAt = time.Now().UTC()

	if err := rec.Validate(); err != nil {
		return err
	}

	existing, err := s.FindRecordByURL(ctx, rec.SourceURL)
	if err != nil && vidmeta.ErrorCode(err) != vidmeta.ENOTFOUND {
		return err
	}
	if existing != nil {
		rec.ID = existing.ID
		_, err := s.db.ExecContext(ctx, `
			UPDATE records
			SET video_id = ?, media_url = ?, title = ?, description = ?,
				duration_seconds = ?, upload_date = ?, thumbnail_url = ?,
				content_hash = ?, fetched_at = ?
			WHERE source_url = ?
		`, rec.Record.ID, rec.Record.MediaURL, rec.Record.Title, rec.Record.Description,
			rec.Record.DurationSeconds, rec.Record.UploadDate, rec.Record.ThumbnailURL,
			rec.ContentHash, rec.FetchedAt.Format(time.RFC3339), rec.SourceURL)
		return err
	}

	rec.ID = uuid.New().String()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.SourceURL, rec.Record.ID, rec.Record.MediaURL, rec.Record.Title,
		rec.Record.Description, rec.Record.DurationSeconds, rec.Record.UploadDate,
		rec.Record.ThumbnailURL, rec.ContentHash, rec.FetchedAt.Format(time.RFC3339))

	return err
}

// FindRecordByURL retrieves the record extracted from a source URL.
func (s *RecordService) FindRecordByURL(ctx context.Context, sourceURL string) (*vidmeta.StoredRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+recordColumns+`
		FROM records
		WHERE source_url = ?
	`, sourceURL)

	rec, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, vidmeta.Errorf(vidmeta.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter vidmeta.RecordFilter) ([]*vidmeta.StoredRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records WHERE 1=1")

	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.VideoID != nil {
		query.WriteString(" AND video_id = ?")
		args = append(args, *filter.VideoID)
	}

	query.WriteString(" ORDER BY fetched_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*vidmeta.StoredRecord
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// DeleteRecordByURL permanently removes the record for a source URL.
func (s *RecordService) DeleteRecordByURL(ctx context.Context, sourceURL string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE source_url = ?", sourceURL)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return vidmeta.Errorf(vidmeta.ENOTFOUND, "record not found")
	}

	return nil
}

// scanRecord scans one row's columns into a StoredRecord.
func scanRecord(scan func(dest ...any) error) (*vidmeta.StoredRecord, error) {
	var rec vidmeta.StoredRecord
	var fetchedAt string

	if err := scan(&rec.ID, &rec.SourceURL, &rec.Record.ID, &rec.Record.MediaURL,
		&rec.Record.Title, &rec.Record.Description, &rec.Record.DurationSeconds,
		&rec.Record.UploadDate, &rec.Record.ThumbnailURL, &rec.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}
	rec.FetchedAt = t

	return &rec, nil
}
