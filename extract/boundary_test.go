package extract_test

import (
	"regexp"
	"testing"

	"github.com/fwojciec/vidmeta"
	"github.com/fwojciec/vidmeta/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBetween(t *testing.T) {
	t.Parallel()

	start := regexp.MustCompile(`__html5playerdata\s*=\s*`)
	end := regexp.MustCompile(`,\s*__right_margin_top`)

	t.Run("returns span between markers", func(t *testing.T) {
		t.Parallel()

		text := `var __html5playerdata = {id:"470372"}, __right_margin_top = 10;`
		got, err := extract.Between(text, start, end)

		require.NoError(t, err)
		assert.Equal(t, `{id:"470372"}`, got)
	})

	t.Run("non-greedy: stops at first end marker", func(t *testing.T) {
		t.Parallel()

		text := `__html5playerdata = {a:1}, __right_margin_top = 1, __right_margin_top = 2`
		got, err := extract.Between(text, start, end)

		require.NoError(t, err)
		assert.Equal(t, `{a:1}`, got)
	})

	t.Run("end marker inside the literal truncates the span", func(t *testing.T) {
		t.Parallel()

		// Accepted limitation: the truncated span is handed to the literal
		// normalizer, which rejects it.
		text := `__html5playerdata = {note:"see, __right_margin_top"}, __right_margin_top = 1`
		got, err := extract.Between(text, start, end)

		require.NoError(t, err)
		assert.Equal(t, `{note:"see`, got)
	})

	t.Run("missing start marker", func(t *testing.T) {
		t.Parallel()

		_, err := extract.Between(`no player data here`, start, end)

		require.Error(t, err)
		assert.Equal(t, vidmeta.EBOUNDARY, vidmeta.ErrorCode(err))
	})

	t.Run("missing end marker", func(t *testing.T) {
		t.Parallel()

		_, err := extract.Between(`__html5playerdata = {id:"1"};`, start, end)

		require.Error(t, err)
		assert.Equal(t, vidmeta.EBOUNDARY, vidmeta.ErrorCode(err))
	})

	t.Run("end marker before start is not matched", func(t *testing.T) {
		t.Parallel()

		_, err := extract.Between(`, __right_margin_top __html5playerdata = `, start, end)

		require.Error(t, err)
		assert.Equal(t, vidmeta.EBOUNDARY, vidmeta.ErrorCode(err))
	})
}
