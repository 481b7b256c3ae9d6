package services

import (
	"testing"
	"time"

	"github.com/rcee-dev/campusvoice/pkg/internal/database"
	"github.com/rcee-dev/campusvoice/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPoll(t *testing.T) models.Poll {
	t.Helper()

	require.NoError(t, SeedManagementAccount())
	management, err := Authenticate(ManagementEmail, ManagementPassword, models.RoleManagement)
	require.NoError(t, err)

	poll, err := NewPoll(models.Poll{
		Title:       "Rate the mess food",
		Description: "Weekly feedback on mess quality.",
		AccountID:   management.ID,
	})
	require.NoError(t, err)

	return poll
}

func TestNewPollDefaults(t *testing.T) {
	openTestDatabase(t)

	poll := createTestPoll(t)
	assert.Equal(t, "General", poll.Category)
	assert.True(t, poll.IsActive)
}

func TestListActivePolls(t *testing.T) {
	openTestDatabase(t)

	first := createTestPoll(t)
	second := models.Poll{
		Title:       "Rate the library",
		Description: "Opening hours and seating.",
		Category:    "Academics",
		AccountID:   first.AccountID,
	}
	second.CreatedAt = first.CreatedAt.Add(time.Minute)
	second, err := NewPoll(second)
	require.NoError(t, err)

	polls, err := ListActivePolls()
	require.NoError(t, err)
	require.Len(t, polls, 2)
	assert.Equal(t, second.ID, polls[0].ID)

	// Deactivated polls drop out of the listing.
	_, err = TogglePoll(second)
	require.NoError(t, err)
	polls, err = ListActivePolls()
	require.NoError(t, err)
	require.Len(t, polls, 1)
	assert.Equal(t, first.ID, polls[0].ID)
}

func TestRatePollUpsert(t *testing.T) {
	openTestDatabase(t)
	poll := createTestPoll(t)
	rater := createTestStudent(t, "R001")

	_, err := RatePoll(poll, models.PollRating{Rating: 4, Comment: "ok", AccountID: rater.ID})
	require.NoError(t, err)

	poll, err = GetPoll(poll.ID)
	require.NoError(t, err)
	metric := GetPollMetric(poll)
	assert.EqualValues(t, 1, metric.TotalRatings)
	assert.Equal(t, "4.00", metric.AverageRating)
	assert.EqualValues(t, 1, metric.Distribution[4])

	// Rating again replaces the entry in place instead of appending.
	_, err = RatePoll(poll, models.PollRating{Rating: 2, AccountID: rater.ID})
	require.NoError(t, err)

	poll, err = GetPoll(poll.ID)
	require.NoError(t, err)
	require.Len(t, poll.Ratings, 1)
	assert.Equal(t, 2, poll.Ratings[0].Rating)

	metric = GetPollMetric(poll)
	assert.EqualValues(t, 1, metric.TotalRatings)
	assert.Equal(t, "2.00", metric.AverageRating)
	assert.EqualValues(t, 1, metric.Distribution[2])
	assert.EqualValues(t, 0, metric.Distribution[4])
}

func TestGetPollMetric(t *testing.T) {
	openTestDatabase(t)
	poll := createTestPoll(t)

	// No ratings yet: average is "0.00", never a division error.
	metric := GetPollMetric(poll)
	assert.EqualValues(t, 0, metric.TotalRatings)
	assert.Equal(t, "0.00", metric.AverageRating)
	require.Len(t, metric.Distribution, 5)

	for idx, star := range []int{5, 4, 4, 3} {
		rater := createTestStudent(t, "R00"+string(rune('1'+idx)))
		_, err := RatePoll(poll, models.PollRating{Rating: star, AccountID: rater.ID})
		require.NoError(t, err)
	}

	poll, err := GetPoll(poll.ID)
	require.NoError(t, err)
	metric = GetPollMetric(poll)
	assert.EqualValues(t, 4, metric.TotalRatings)
	assert.Equal(t, "4.00", metric.AverageRating)

	// The histogram buckets always sum to the total.
	var sum int64
	for star := 1; star <= 5; star++ {
		sum += metric.Distribution[star]
	}
	assert.Equal(t, metric.TotalRatings, sum)
}

func TestGetAccountRating(t *testing.T) {
	openTestDatabase(t)
	poll := createTestPoll(t)
	rater := createTestStudent(t, "R001")
	other := createTestStudent(t, "R002")

	_, err := RatePoll(poll, models.PollRating{Rating: 5, AccountID: rater.ID})
	require.NoError(t, err)

	poll, err = GetPoll(poll.ID)
	require.NoError(t, err)

	rated := GetAccountRating(poll, rater.ID)
	require.NotNil(t, rated)
	assert.Equal(t, 5, *rated)
	assert.Nil(t, GetAccountRating(poll, other.ID))
}

func TestDeletePoll(t *testing.T) {
	openTestDatabase(t)
	poll := createTestPoll(t)
	rater := createTestStudent(t, "R001")

	_, err := RatePoll(poll, models.PollRating{Rating: 3, AccountID: rater.ID})
	require.NoError(t, err)

	require.NoError(t, DeletePoll(poll))

	_, err = GetPoll(poll.ID)
	assert.Error(t, err)

	var count int64
	require.NoError(t, database.C.Model(&models.PollRating{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
