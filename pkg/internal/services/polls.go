package services

import (
	"errors"
	"fmt"

	"github.com/rcee-dev/campusvoice/pkg/internal/database"
	"github.com/rcee-dev/campusvoice/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

func NewPoll(poll models.Poll) (models.Poll, error) {
	if len(poll.Category) == 0 {
		poll.Category = "General"
	}
	poll.IsActive = true
	if poll.Ratings == nil {
		poll.Ratings = make([]models.PollRating, 0)
	}

	if err := database.C.Create(&poll).Error; err != nil {
		return poll, err
	}
	return poll, nil
}

func GetPoll(id uint) (models.Poll, error) {
	var poll models.Poll
	if err := database.C.Preload("Ratings").Where("id = ?", id).First(&poll).Error; err != nil {
		return poll, err
	}
	return poll, nil
}

func ListActivePolls() ([]models.Poll, error) {
	var polls []models.Poll
	if err := database.C.Preload("Ratings").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&polls).Error; err != nil {
		return polls, err
	}
	return polls, nil
}

// RatePoll upserts the caller's rating: a second submission from the same
// account replaces the first in place instead of appending.
func RatePoll(poll models.Poll, rating models.PollRating) (models.PollRating, error) {
	rating.PollID = poll.ID

	var current models.PollRating
	if err := database.C.Model(&models.PollRating{}).
		Where("poll_id = ? AND account_id = ?", poll.ID, rating.AccountID).
		First(&current).Error; err == nil {
		if err := database.C.Model(&current).
			Where("id = ?", current.ID).
			Updates(map[string]any{
				"rating":  rating.Rating,
				"comment": rating.Comment,
			}).Error; err != nil {
			return rating, fmt.Errorf("failed to update your rating")
		}

		current.Rating = rating.Rating
		current.Comment = rating.Comment
		return current, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return rating, err
	}

	if err := database.C.Create(&rating).Error; err != nil {
		return rating, err
	}

	return rating, nil
}

func TogglePoll(poll models.Poll) (models.Poll, error) {
	poll.IsActive = !poll.IsActive
	if err := database.C.Model(&poll).
		Where("id = ?", poll.ID).
		Update("is_active", poll.IsActive).Error; err != nil {
		return poll, err
	}
	return poll, nil
}

func DeletePoll(poll models.Poll) error {
	if err := database.C.Where("poll_id = ?", poll.ID).Delete(&models.PollRating{}).Error; err != nil {
		return err
	}
	return database.C.Delete(&poll).Error
}

// GetPollMetric tabulates the 1-5 star histogram and the on-demand average,
// rendered to two decimal places ("0.00" when nobody rated yet).
func GetPollMetric(poll models.Poll) models.PollMetric {
	distribution := make(map[int]int64)
	for star := 1; star <= 5; star++ {
		distribution[star] = 0
	}

	var sum int64
	for _, rating := range poll.Ratings {
		distribution[rating.Rating]++
		sum += int64(rating.Rating)
	}

	total := int64(len(poll.Ratings))
	average := "0.00"
	if total > 0 {
		average = fmt.Sprintf("%.2f", float64(sum)/float64(total))
	}

	return models.PollMetric{
		TotalRatings:  total,
		AverageRating: average,
		Distribution:  distribution,
	}
}

// GetAccountRating returns the caller's own rating of the poll, nil if the
// account has not rated it.
func GetAccountRating(poll models.Poll, accountID uint) *int {
	if rating, ok := lo.Find(poll.Ratings, func(item models.PollRating) bool {
		return item.AccountID == accountID
	}); ok {
		return &rating.Rating
	}
	return nil
}
