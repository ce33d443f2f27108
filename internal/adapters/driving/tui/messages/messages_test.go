package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view     ViewType
		expected string
	}{
		{ViewMenu, "menu"},
		{ViewLeaderboard, "leaderboard"},
		{ViewMarks, "marks"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

func TestViewType_Values(t *testing.T) {
	assert.Equal(t, ViewType(0), ViewMenu)
	assert.Equal(t, ViewType(1), ViewLeaderboard)
	assert.Equal(t, ViewType(2), ViewMarks)
	assert.Equal(t, ViewType(3), ViewHelp)
}

func TestDocumentLoaded(t *testing.T) {
	sess := domain.NewSession("s1", &domain.Document{})
	msg := DocumentLoaded{Session: sess}

	assert.Equal(t, sess, msg.Session)
	assert.NoError(t, msg.Err)

	failed := DocumentLoaded{Err: errors.New("boom")}
	assert.Nil(t, failed.Session)
	assert.EqualError(t, failed.Err, "boom")
}

func TestErrorOccurred(t *testing.T) {
	err := errors.New("test error")
	msg := ErrorOccurred{Err: err}

	assert.Equal(t, err, msg.Err)
}
