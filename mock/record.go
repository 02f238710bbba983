package mock

import (
	"context"

	"github.com/fwojciec/vidmeta"
)

var _ vidmeta.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of vidmeta.RecordService.
type RecordService struct {
	SaveRecordFn        func(ctx context.Context, rec *vidmeta.StoredRecord) error
	FindRecordByURLFn   func(ctx context.Context, sourceURL string) (*vidmeta.StoredRecord, error)
	FindRecordsFn       func(ctx context.Context, filter vidmeta.RecordFilter) ([]*vidmeta.StoredRecord, error)
	DeleteRecordByURLFn func(ctx context.Context, sourceURL string) error
}

func (s *RecordService) SaveRecord(ctx context.Context, rec *vidmeta.StoredRecord) error {
	return s.SaveRecordFn(ctx, rec)
}

func (s *RecordService) FindRecordByURL(ctx context.Context, sourceURL string) (*vidmeta.StoredRecord, error) {
	return s.FindRecordByURLFn(ctx, sourceURL)
}

func (s *RecordService) FindRecords(ctx context.Context, filter vidmeta.RecordFilter) ([]*vidmeta.StoredRecord, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecordByURL(ctx context.Context, sourceURL string) error {
	return s.DeleteRecordByURLFn(ctx, sourceURL)
}
