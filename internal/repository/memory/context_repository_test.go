package memory

import (
	"testing"

	"lifemind-be/pkg/dialogue"
	"lifemind-be/pkg/dialogue/intent"

	"github.com/stretchr/testify/assert"
)

func TestContextRepositoryRoundTrip(t *testing.T) {
	repo := NewContextRepository()

	ctx := dialogue.Context{
		AwaitingApproval: true,
		PendingAction: &dialogue.PendingAction{
			Type: intent.Reminder,
			Slots: intent.Slots{
				Text: "water plants",
				Date: "tomorrow",
				Time: "17:00",
			},
		},
		History: []string{"User: set a reminder to water plants"},
	}

	repo.Save("session-1", ctx)

	got, found := repo.Get("session-1")
	assert.True(t, found)
	assert.Equal(t, ctx, got)

	_, found = repo.Get("session-2")
	assert.False(t, found)

	repo.Delete("session-1")
	_, found = repo.Get("session-1")
	assert.False(t, found)
}
