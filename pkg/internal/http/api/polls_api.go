package api

import (
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rcee-dev/campusvoice/pkg/internal/http/exts"
	"github.com/rcee-dev/campusvoice/pkg/internal/models"
	"github.com/rcee-dev/campusvoice/pkg/internal/security"
	"github.com/rcee-dev/campusvoice/pkg/internal/services"
)

func renderPoll(poll models.Poll) map[string]any {
	var out map[string]any
	raw, _ := jsoniter.Marshal(poll)
	_ = jsoniter.Unmarshal(raw, &out)
	return out
}

func createPoll(c *fiber.Ctx) error {
	if err := security.EnsureManagement(c); err != nil {
		return err
	}
	user, _ := security.GetClaims(c)

	var data struct {
		Title       string `json:"title" validate:"required"`
		Description string `json:"description" validate:"required"`
		Category    string `json:"category"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	poll, err := services.NewPoll(models.Poll{
		Title:       data.Title,
		Description: data.Description,
		Category:    data.Category,
		AccountID:   user.UserID,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Feedback poll created successfully",
		"poll":    poll,
	})
}

// listPoll returns every active poll, newest first, each augmented with the
// caller's own rating (null when they have not rated it yet) and the overall
// rating summary. Individual rater identities stay out of the overview.
func listPoll(c *fiber.Ctx) error {
	if err := security.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := security.GetClaims(c)

	polls, err := services.ListActivePolls()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]map[string]any, 0, len(polls))
	for _, poll := range polls {
		metric := services.GetPollMetric(poll)

		item := renderPoll(poll)
		delete(item, "ratings")
		item["userRating"] = services.GetAccountRating(poll, user.UserID)
		item["totalRatings"] = metric.TotalRatings
		item["averageRating"] = metric.AverageRating

		out = append(out, item)
	}

	return c.JSON(out)
}

func getPoll(c *fiber.Ctx) error {
	if err := security.EnsureAuthenticated(c); err != nil {
		return err
	}
	pollId, _ := c.ParamsInt("pollId")

	poll, err := services.GetPoll(uint(pollId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "poll not found")
	}

	metric := services.GetPollMetric(poll)

	out := renderPoll(poll)
	out["distribution"] = metric.Distribution
	out["totalRatings"] = metric.TotalRatings
	out["averageRating"] = metric.AverageRating

	return c.JSON(out)
}

func ratePoll(c *fiber.Ctx) error {
	if err := security.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := security.GetClaims(c)
	if user.Role != models.RoleStudent {
		return fiber.NewError(fiber.StatusForbidden, "only students can submit ratings")
	}
	pollId, _ := c.ParamsInt("pollId")

	var data struct {
		Rating  int    `json:"rating" validate:"required,min=1,max=5"`
		Comment string `json:"comment"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	poll, err := services.GetPoll(uint(pollId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "poll not found")
	}
	if !poll.IsActive {
		return fiber.NewError(fiber.StatusBadRequest, "this poll is no longer active")
	}

	if _, err := services.RatePoll(poll, models.PollRating{
		Rating:    data.Rating,
		Comment:   data.Comment,
		AccountID: user.UserID,
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// Reload so the metric reflects the just-written rating.
	poll, err = services.GetPoll(poll.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	metric := services.GetPollMetric(poll)

	return c.JSON(fiber.Map{
		"message":       "Rating submitted successfully",
		"averageRating": metric.AverageRating,
		"totalRatings":  metric.TotalRatings,
	})
}

func togglePoll(c *fiber.Ctx) error {
	if err := security.EnsureManagement(c); err != nil {
		return err
	}
	pollId, _ := c.ParamsInt("pollId")

	poll, err := services.GetPoll(uint(pollId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "poll not found")
	}

	poll, err = services.TogglePoll(poll)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	message := "Poll deactivated successfully"
	if poll.IsActive {
		message = "Poll activated successfully"
	}

	return c.JSON(fiber.Map{
		"message": message,
		"poll":    poll,
	})
}

func deletePoll(c *fiber.Ctx) error {
	if err := security.EnsureManagement(c); err != nil {
		return err
	}
	pollId, _ := c.ParamsInt("pollId")

	poll, err := services.GetPoll(uint(pollId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "poll not found")
	}

	if err := services.DeletePoll(poll); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Poll deleted successfully",
	})
}
