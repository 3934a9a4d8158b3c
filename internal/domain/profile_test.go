package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	t.Run("starting a span ends the previous one", func(t *testing.T) {
		profile, endProfile := NewProfile()
		first, _ := profile.StartNewSpan("first")
		require.Nil(t, first.Elapsed)

		second, endSecond := profile.StartNewSpan("second")
		require.NotNil(t, first.Elapsed)
		require.Nil(t, second.Elapsed)

		endSecond()
		elapsed := *second.Elapsed
		endProfile()
		require.Equal(t, elapsed, *second.Elapsed)
		require.NotNil(t, profile.TotalMs)
	})

	t.Run("end closes the open span", func(t *testing.T) {
		profile, endProfile := NewProfile()
		span, _ := profile.StartNewSpan("only")
		endProfile()
		require.NotNil(t, span.Elapsed)
	})

	t.Run("json", func(t *testing.T) {
		profile, endProfile := NewProfile()
		profile.StartNewSpan("stage")
		endProfile()

		bytes, err := json.Marshal(profile)
		require.NoError(t, err)

		out := Profile{}
		require.NoError(t, json.Unmarshal(bytes, &out))
		require.Len(t, out.Spans, 1)
		require.Equal(t, "stage", out.Spans[0].Name)
		require.Equal(t, *profile.TotalMs, *out.TotalMs)
	})
}
