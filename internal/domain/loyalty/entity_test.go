//go:build unit

package loyalty_test

import (
	"math"
	"testing"
	"time"

	"salon-loyalty/internal/domain/loyalty"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCard(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("new card starts empty", func(t *testing.T) {
		c := loyalty.NewCard(uuid.New(), uuid.New(), now)

		assert.NotEqual(t, uuid.Nil, c.ID())
		assert.Zero(t, c.TotalVisits())
		assert.Zero(t, c.TotalPoints())
		assert.Zero(t, c.RewardsRedeemed())
		assert.Equal(t, c.CreatedAt(), c.UpdatedAt())
	})

	t.Run("accrual is monotonic", func(t *testing.T) {
		c := loyalty.NewCard(uuid.New(), uuid.New(), now)

		require.NoError(t, c.Accrue(25, now.Add(time.Hour)))
		require.NoError(t, c.Accrue(9, now.Add(2*time.Hour)))
		require.NoError(t, c.Accrue(0, now.Add(3*time.Hour)))

		assert.Equal(t, int32(3), c.TotalVisits())
		assert.Equal(t, int64(34), c.TotalPoints())
		assert.Equal(t, now.Add(3*time.Hour), c.UpdatedAt())
	})

	t.Run("points total grows past the int32 range", func(t *testing.T) {
		c := loyalty.ReconstructCard(uuid.New(), uuid.New(), uuid.New(), 40, math.MaxInt32, 0, now, now)

		require.NoError(t, c.Accrue(999_999_999, now))

		assert.Equal(t, int64(math.MaxInt32)+999_999_999, c.TotalPoints())
	})

	t.Run("negative points are rejected", func(t *testing.T) {
		c := loyalty.NewCard(uuid.New(), uuid.New(), now)

		err := c.Accrue(-1, now)

		assert.ErrorIs(t, err, loyalty.ErrNegativePoints)
		assert.Zero(t, c.TotalVisits())
	})
}

func TestProgress(t *testing.T) {
	cases := []struct {
		name      string
		visits    int32
		threshold int32
		want      loyalty.Progress
	}{
		{name: "no visits", visits: 0, threshold: 10, want: loyalty.Progress{VisitsNeeded: 10, Percent: 0}},
		{name: "partway", visits: 3, threshold: 10, want: loyalty.Progress{VisitsNeeded: 7, Percent: 30}},
		{name: "rounds down", visits: 1, threshold: 3, want: loyalty.Progress{VisitsNeeded: 2, Percent: 33}},
		{name: "reached", visits: 10, threshold: 10, want: loyalty.Progress{VisitsNeeded: 0, Percent: 100, RewardReady: true}},
		{name: "past threshold caps at 100", visits: 14, threshold: 10, want: loyalty.Progress{VisitsNeeded: 0, Percent: 100, RewardReady: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, loyalty.NewProgress(c.visits, c.threshold))
		})
	}
}
