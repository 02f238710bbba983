package vidmeta

import (
	"context"
	"time"
)

// Record is the canonical, site-agnostic metadata extracted from one video
// page. ID and MediaURL are required for the record to be usable; everything
// else is optional and omitted when no strategy resolves it.
type Record struct {
	ID              string `json:"id"`
	MediaURL        string `json:"mediaUrl"`
	Title           string `json:"title,omitempty"`
	Description     string `json:"description,omitempty"`
	DurationSeconds int    `json:"durationSeconds,omitempty"`
	UploadDate      string `json:"uploadDate,omitempty"` // YYYYMMDD
	ThumbnailURL    string `json:"thumbnailUrl,omitempty"`
}

// Validate returns an error if the record is missing a required field.
func (r *Record) Validate() error {
	if r.ID == "" {
		return Errorf(EMISSING, "record id required")
	}
	if r.MediaURL == "" {
		return Errorf(EMISSING, "record media URL required")
	}
	return nil
}

// StoredRecord is a Record persisted by the batch tool, keyed by the page it
// was extracted from.
type StoredRecord struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	Record      Record    `json:"record"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the stored record contains invalid fields.
func (r *StoredRecord) Validate() error {
	if r.SourceURL == "" {
		return Errorf(EINVALID, "stored record source URL required")
	}
	return r.Record.Validate()
}

// RecordService represents a service for managing stored records.
type RecordService interface {
	// SaveRecord creates a stored record, or replaces the existing one for
	// the same source URL.
	SaveRecord(ctx context.Context, rec *StoredRecord) error

	// FindRecordByURL retrieves the record extracted from a source URL.
	// Returns ENOTFOUND if no record exists.
	FindRecordByURL(ctx context.Context, sourceURL string) (*StoredRecord, error)

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*StoredRecord, error)

	// DeleteRecordByURL permanently removes the record for a source URL.
	// Returns ENOTFOUND if no record exists.
	DeleteRecordByURL(ctx context.Context, sourceURL string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	SourceURL *string `json:"sourceUrl"`
	VideoID   *string `json:"videoId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
