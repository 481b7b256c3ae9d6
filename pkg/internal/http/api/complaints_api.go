package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rcee-dev/campusvoice/pkg/internal/database"
	"github.com/rcee-dev/campusvoice/pkg/internal/http/exts"
	"github.com/rcee-dev/campusvoice/pkg/internal/models"
	"github.com/rcee-dev/campusvoice/pkg/internal/security"
	"github.com/rcee-dev/campusvoice/pkg/internal/services"
	"gorm.io/gorm"
)

func createComplaint(c *fiber.Ctx) error {
	if err := security.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := security.GetClaims(c)
	if user.Role != models.RoleStudent {
		return fiber.NewError(fiber.StatusForbidden, "only students can post complaints")
	}

	var data struct {
		Title       string `json:"title" validate:"required"`
		Description string `json:"description" validate:"required"`
		Category    string `json:"category" validate:"required,oneof=Hostel Mess Transport Academics Others"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	complaint, err := services.NewComplaint(models.Complaint{
		Title:       data.Title,
		Description: data.Description,
		Category:    data.Category,
		AccountID:   user.UserID,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Complaint posted successfully",
		"complaint": complaint,
	})
}

// The public feed is always anonymous: nobody, student or management, gets to
// see who posted a complaint.
func listComplaint(c *fiber.Ctx) error {
	if err := security.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := security.GetClaims(c)

	complaints, err := services.ListComplaint(database.C)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]map[string]any, 0, len(complaints))
	for _, complaint := range complaints {
		out = append(out, services.AnonymizeComplaint(complaint, &user))
	}

	return c.JSON(out)
}

func listMyComplaint(c *fiber.Ctx) error {
	if err := security.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := security.GetClaims(c)
	if user.Role != models.RoleStudent {
		return fiber.NewError(fiber.StatusForbidden, "this endpoint is for students only")
	}

	complaints, err := services.ListComplaint(
		services.FilterComplaintWithAccount(database.C, user.UserID),
	)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(complaints)
}

func updateComplaintStatus(c *fiber.Ctx) error {
	if err := security.EnsureManagement(c); err != nil {
		return err
	}
	complaintId, _ := c.ParamsInt("complaintId")

	var data struct {
		Status        *string `json:"status" validate:"omitempty,oneof='Pending' 'In Progress' 'Resolved'"`
		AdminResponse *string `json:"adminResponse"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	complaint, err := services.GetComplaint(uint(complaintId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "complaint not found")
	}

	complaint, err = services.UpdateComplaint(complaint, data.Status, data.AdminResponse)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"message":   "Complaint updated successfully",
		"complaint": services.AnonymizeComplaint(complaint, nil),
	})
}

func deleteComplaint(c *fiber.Ctx) error {
	if err := security.EnsureManagement(c); err != nil {
		return err
	}
	complaintId, _ := c.ParamsInt("complaintId")

	complaint, err := services.GetComplaint(uint(complaintId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "complaint not found")
	}

	if err := services.DeleteComplaint(complaint); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Complaint deleted successfully",
	})
}

func agreeComplaint(c *fiber.Ctx) error {
	return reactComplaint(c, true)
}

func disagreeComplaint(c *fiber.Ctx) error {
	return reactComplaint(c, false)
}

func reactComplaint(c *fiber.Ctx, agreeing bool) error {
	if err := security.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := security.GetClaims(c)
	complaintId, _ := c.ParamsInt("complaintId")

	complaint, err := services.GetComplaint(uint(complaintId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "complaint not found")
	}

	if err := services.ToggleReaction(&complaint, user.UserID, agreeing); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	message := "Agreement recorded"
	if !agreeing {
		message = "Disagreement recorded"
	}

	return c.JSON(fiber.Map{
		"message":   message,
		"agrees":    len(complaint.Agrees),
		"disagrees": len(complaint.Disagrees),
	})
}

func commentComplaint(c *fiber.Ctx) error {
	if err := security.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := security.GetClaims(c)
	complaintId, _ := c.ParamsInt("complaintId")

	var data struct {
		Text string `json:"text" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}
	data.Text = strings.TrimSpace(data.Text)
	if len(data.Text) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "comment text is required")
	}

	complaint, err := services.GetComplaint(uint(complaintId))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "complaint not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	comment, err := services.AddComplaintComment(complaint, models.ComplaintComment{
		Text:      data.Text,
		AccountID: user.UserID,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Comment added successfully",
		"comment": comment,
	})
}
