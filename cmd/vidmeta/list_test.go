package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/vidmeta"
	main "github.com/fwojciec/vidmeta/cmd/vidmeta"
	"github.com/fwojciec/vidmeta/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists records with id, source URL, and title", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, _ vidmeta.RecordFilter) ([]*vidmeta.StoredRecord, error) {
				return []*vidmeta.StoredRecord{
					{
						SourceURL: "https://www.ndtv.com/video/news/delhi-air-470372",
						Record:    vidmeta.Record{ID: "470372", MediaURL: "https://vod.ndtv.com/470372.mp4", Title: "Delhi's Air Quality"},
					},
					{
						SourceURL: "https://sports.ndtv.com/videos/cricket-469764",
						Record:    vidmeta.Record{ID: "469764", MediaURL: "https://vod.ndtv.com/469764.mp4", Title: "Cricket Highlights"},
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Records: records,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "470372")
		assert.Contains(t, output, "469764")
		assert.Contains(t, output, "https://www.ndtv.com/video/news/delhi-air-470372")
		assert.Contains(t, output, "Delhi's Air Quality")
		assert.Contains(t, output, "Cricket Highlights")
	})

	t.Run("passes video id and limit to the filter", func(t *testing.T) {
		t.Parallel()

		var receivedFilter vidmeta.RecordFilter
		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, filter vidmeta.RecordFilter) ([]*vidmeta.StoredRecord, error) {
				receivedFilter = filter
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Records: records,
		}

		cmd := &main.ListCmd{VideoID: "470372", Limit: 5}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, receivedFilter.VideoID)
		assert.Equal(t, "470372", *receivedFilter.VideoID)
		assert.Equal(t, 5, receivedFilter.Limit)
	})

	t.Run("shows helpful message when no records exist", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, _ vidmeta.RecordFilter) ([]*vidmeta.StoredRecord, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Records: records,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No records")
	})

	t.Run("returns error when FindRecords fails", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, _ vidmeta.RecordFilter) ([]*vidmeta.StoredRecord, error) {
				return nil, vidmeta.Errorf(vidmeta.EINTERNAL, "database error")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Records: records,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
		assert.Empty(t, stdout.String())
	})
}
