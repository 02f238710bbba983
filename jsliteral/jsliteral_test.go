package jsliteral_test

import (
	"testing"

	"github.com/fwojciec/vidmeta"
	"github.com/fwojciec/vidmeta/jsliteral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("unquoted keys, single quotes, trailing comma", func(t *testing.T) {
		t.Parallel()

		data, err := jsliteral.Normalize(`{id:"470372", title:'Air Quality', dur: 137,}`)
		require.NoError(t, err)

		assert.Equal(t, map[string]any{
			"id":    "470372",
			"title": "Air Quality",
			"dur":   float64(137),
		}, data)
	})

	t.Run("escaped single quote", func(t *testing.T) {
		t.Parallel()

		data, err := jsliteral.Normalize(`{title: 'Delhi\'s Air Quality'}`)
		require.NoError(t, err)

		assert.Equal(t, "Delhi's Air Quality", data["title"])
	})

	t.Run("double quote inside single-quoted string", func(t *testing.T) {
		t.Parallel()

		data, err := jsliteral.Normalize(`{title: 'the "daily" show'}`)
		require.NoError(t, err)

		assert.Equal(t, `the "daily" show`, data["title"])
	})

	t.Run("boolean and null literals pass through", func(t *testing.T) {
		t.Parallel()

		data, err := jsliteral.Normalize(`{autoplay: true, ads: false, extra: null}`)
		require.NoError(t, err)

		assert.Equal(t, true, data["autoplay"])
		assert.Equal(t, false, data["ads"])
		assert.Nil(t, data["extra"])
	})

	t.Run("bare identifier values become opaque strings", func(t *testing.T) {
		t.Parallel()

		data, err := jsliteral.Normalize(`{player: html5, media: "a.mp4"}`)
		require.NoError(t, err)

		assert.Equal(t, "html5", data["player"])
	})

	t.Run("nested structures and trailing commas", func(t *testing.T) {
		t.Parallel()

		data, err := jsliteral.Normalize(`{tracks: ["a.mp4", "b.mp4",], meta: {dur: "02:18",},}`)
		require.NoError(t, err)

		assert.Equal(t, []any{"a.mp4", "b.mp4"}, data["tracks"])
		assert.Equal(t, map[string]any{"dur": "02:18"}, data["meta"])
	})

	t.Run("comments are stripped", func(t *testing.T) {
		t.Parallel()

		data, err := jsliteral.Normalize(`{
			id: "1", // player id
			/* legacy field */
			media: "v.mp4"
		}`)
		require.NoError(t, err)

		assert.Equal(t, "1", data["id"])
		assert.Equal(t, "v.mp4", data["media"])
	})

	t.Run("boolean expressions fail with EPARSE", func(t *testing.T) {
		t.Parallel()

		// Some sites emit real JS expressions inside the literal; those must
		// fail here so extraction can fall back to field-level patterns.
		_, err := jsliteral.Normalize(`{rtmp: true / false, media: "v.mp4"}`)
		require.Error(t, err)
		assert.Equal(t, vidmeta.EPARSE, vidmeta.ErrorCode(err))
	})

	t.Run("truncated literal fails with EPARSE", func(t *testing.T) {
		t.Parallel()

		_, err := jsliteral.Normalize(`{id: "470372", title: "cut off`)
		require.Error(t, err)
		assert.Equal(t, vidmeta.EPARSE, vidmeta.ErrorCode(err))
	})
}

func TestToJSON(t *testing.T) {
	t.Parallel()

	t.Run("already strict JSON is unchanged", func(t *testing.T) {
		t.Parallel()

		src := `{"id":"470372","dur":137}`
		assert.Equal(t, src, jsliteral.ToJSON(src))
	})

	t.Run("quotes bare keys", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, `{"id":"1"}`, jsliteral.ToJSON(`{id:"1"}`))
	})
}
