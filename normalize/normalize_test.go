package normalize_test

import (
	"testing"

	"github.com/fwojciec/vidmeta/normalize"
	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	t.Parallel()

	t.Run("ISO date", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "20171020", normalize.Date("2017-10-20"))
	})

	t.Run("meta tag datetime", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "20171020", normalize.Date("2017-10-20 18:00:00"))
	})

	t.Run("ISO datetime with timezone", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "20190129", normalize.Date("2019-01-29T14:30:00+05:30"))
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "20170928", normalize.Date("  2017-09-28  "))
	})

	t.Run("unparseable yields empty", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", normalize.Date("sometime last week"))
		assert.Equal(t, "", normalize.Date(""))
	})
}

func TestDuration(t *testing.T) {
	t.Parallel()

	t.Run("bare seconds", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 137, normalize.Duration("137"))
	})

	t.Run("MM:SS clock", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 138, normalize.Duration("02:18"))
	})

	t.Run("HH:MM:SS clock", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 3738, normalize.Duration("1:02:18"))
	})

	t.Run("unparseable yields zero", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, normalize.Duration("a:b"))
		assert.Equal(t, 0, normalize.Duration("1:2:3:4"))
		assert.Equal(t, 0, normalize.Duration("-5"))
		assert.Equal(t, 0, normalize.Duration(""))
	})
}

func TestUnquotePlus(t *testing.T) {
	t.Parallel()

	t.Run("decodes percent escapes and plus", func(t *testing.T) {
		t.Parallel()

		got := normalize.UnquotePlus("The+CNB+Daily+-+October+13%2C+2017")
		assert.Equal(t, "The CNB Daily - October 13, 2017", got)
	})

	t.Run("invalid encoding passes through", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "100%zz", normalize.UnquotePlus("100%zz"))
	})
}

func TestCleanHTML(t *testing.T) {
	t.Parallel()

	t.Run("strips tags and decodes entities", func(t *testing.T) {
		t.Parallel()

		got := normalize.CleanHTML("Delhi&#39;s air is <b>very\n poor</b> today")
		assert.Equal(t, "Delhi's air is very poor today", got)
	})

	t.Run("plain text unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "already clean", normalize.CleanHTML("already clean"))
	})
}

func TestRemoveEnd(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Top health stories", normalize.RemoveEnd("Top health stories (Read more)", " (Read more)"))
	assert.Equal(t, "No suffix here", normalize.RemoveEnd("No suffix here", " (Read more)"))
}
