package webform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buwana-tours/pkg/clientstore"
)

func TestReviewSubmitAppendsAndResets(t *testing.T) {
	state := clientstore.NewState(clientstore.NewMemoryStore())

	form := &ReviewForm{Name: "Maya", Rating: 5, Text: "Wonderful trip", Country: "Australia"}
	ok, err := form.Submit(state)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Empty(t, form.Name)
	assert.Zero(t, form.Rating)

	reviews, err := state.Reviews()
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Maya", reviews[0].Name)
	assert.Equal(t, "Australia", reviews[0].Country)
}

func TestReviewSubmitSilentlyAbortsOnInvalidInput(t *testing.T) {
	state := clientstore.NewState(clientstore.NewMemoryStore())

	tests := []struct {
		name string
		form ReviewForm
	}{
		{"empty name", ReviewForm{Rating: 4, Text: "Nice"}},
		{"empty text", ReviewForm{Name: "Maya", Rating: 4}},
		{"rating too low", ReviewForm{Name: "Maya", Rating: 0, Text: "Nice"}},
		{"rating too high", ReviewForm{Name: "Maya", Rating: 6, Text: "Nice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := tt.form
			ok, err := form.Submit(state)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}

	reviews, err := state.Reviews()
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
