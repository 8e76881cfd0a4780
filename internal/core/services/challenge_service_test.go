package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-finance/internal/core/domain"
)

func TestChallengeService(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Records a good choice", func(t *testing.T) {
		repo := new(MockChallengeRepository)
		queue := &recordingQueue{}
		service := NewChallengeService(repo, queue)

		repo.On("Create", ctx, mock.MatchedBy(func(c *domain.Challenge) bool {
			return c.IsGoodChoice && c.Prompt == "Skip the takeaway coffee"
		})).Return(nil)

		c, err := service.Record(ctx, RecordChallengeInput{UserID: "user-1", Prompt: " Skip the takeaway coffee ", IsGoodChoice: true})

		require.NoError(t, err)
		assert.NotEmpty(t, c.ID)
		assert.False(t, c.Date.IsZero())
		assert.Equal(t, []string{"user-1"}, queue.IDs())
		repo.AssertExpectations(t)
	})

	t.Run("Fail: Requires a user", func(t *testing.T) {
		repo := new(MockChallengeRepository)
		service := NewChallengeService(repo, nil)

		_, err := service.Record(ctx, RecordChallengeInput{})

		assert.ErrorIs(t, err, domain.ErrUserIDRequired)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Success: Lists history", func(t *testing.T) {
		repo := new(MockChallengeRepository)
		service := NewChallengeService(repo, nil)
		repo.On("ListByUserID", ctx, "user-1").Return([]domain.Challenge{{ID: "c1"}, {ID: "c2"}}, nil)

		list, err := service.List(ctx, "user-1")

		require.NoError(t, err)
		assert.Len(t, list, 2)
	})
}
