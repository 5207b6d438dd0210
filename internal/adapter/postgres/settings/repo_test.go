package settings_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/tradedesk-backend/internal/adapter/postgres/settings"
	"github.com/heartmarshall/tradedesk-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

func TestRepo_GetByUserID(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := settings.New(pool)

	userID := testhelper.SeedSettings(t, pool, "Europe/London")

	got, err := repo.GetByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, "Europe/London", got.Timezone)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestRepo_GetByUserID_NotFound(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := settings.New(pool)

	_, err := repo.GetByUserID(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}
