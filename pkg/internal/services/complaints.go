package services

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/rcee-dev/campusvoice/pkg/internal/database"
	"github.com/rcee-dev/campusvoice/pkg/internal/models"
	"github.com/rcee-dev/campusvoice/pkg/internal/security"
	"github.com/samber/lo"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func PreloadComplaint(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Comments")
}

func NewComplaint(complaint models.Complaint) (models.Complaint, error) {
	complaint.Status = models.ComplaintStatusPending
	complaint.Agrees = datatypes.NewJSONSlice([]uint{})
	complaint.Disagrees = datatypes.NewJSONSlice([]uint{})
	if complaint.Comments == nil {
		complaint.Comments = make([]models.ComplaintComment, 0)
	}

	if err := database.C.Create(&complaint).Error; err != nil {
		return complaint, err
	}
	return complaint, nil
}

func GetComplaint(id uint) (models.Complaint, error) {
	var complaint models.Complaint
	if err := PreloadComplaint(database.C).Where("id = ?", id).First(&complaint).Error; err != nil {
		return complaint, err
	}
	return complaint, nil
}

func ListComplaint(tx *gorm.DB) ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := PreloadComplaint(tx).Order("created_at DESC").Find(&complaints).Error; err != nil {
		return complaints, err
	}
	return complaints, nil
}

func FilterComplaintWithAccount(tx *gorm.DB, accountID uint) *gorm.DB {
	return tx.Where("account_id = ?", accountID)
}

// UpdateComplaint is a partial update; nil fields are left untouched.
func UpdateComplaint(complaint models.Complaint, status, response *string) (models.Complaint, error) {
	updates := make(map[string]any)
	if status != nil {
		complaint.Status = *status
		updates["status"] = *status
	}
	if response != nil {
		complaint.AdminResponse = *response
		updates["admin_response"] = *response
	}
	if len(updates) == 0 {
		return complaint, nil
	}

	if err := database.C.Model(&models.Complaint{}).
		Where("id = ?", complaint.ID).
		Updates(updates).Error; err != nil {
		return complaint, err
	}
	return complaint, nil
}

func DeleteComplaint(complaint models.Complaint) error {
	return database.C.Delete(&complaint).Error
}

// ToggleReaction records an agree or disagree for the given account. The two
// membership sets stay disjoint: joining one side always leaves the other, and
// repeating the same reaction is a no-op. Both columns are written in a single
// update so no snapshot ever holds an account in both sets.
func ToggleReaction(complaint *models.Complaint, accountID uint, agreeing bool) error {
	agrees := []uint(complaint.Agrees)
	disagrees := []uint(complaint.Disagrees)

	if agreeing {
		disagrees = lo.Filter(disagrees, func(id uint, _ int) bool { return id != accountID })
		if !lo.Contains(agrees, accountID) {
			agrees = append(agrees, accountID)
		}
	} else {
		agrees = lo.Filter(agrees, func(id uint, _ int) bool { return id != accountID })
		if !lo.Contains(disagrees, accountID) {
			disagrees = append(disagrees, accountID)
		}
	}

	complaint.Agrees = datatypes.NewJSONSlice(agrees)
	complaint.Disagrees = datatypes.NewJSONSlice(disagrees)

	return database.C.Model(&models.Complaint{}).
		Where("id = ?", complaint.ID).
		Updates(map[string]any{
			"agrees":    complaint.Agrees,
			"disagrees": complaint.Disagrees,
		}).Error
}

func AddComplaintComment(complaint models.Complaint, comment models.ComplaintComment) (models.ComplaintComment, error) {
	comment.ComplaintID = complaint.ID
	if err := database.C.Create(&comment).Error; err != nil {
		return comment, err
	}
	return comment, nil
}

// AnonymizeComplaint renders a complaint for the public feed: the owner
// reference is stripped entirely and, when a viewer is given, replaced by an
// isMyComplaint flag that only ever turns true for the owning student.
func AnonymizeComplaint(complaint models.Complaint, viewer *security.Claims) map[string]any {
	var out map[string]any
	raw, _ := jsoniter.Marshal(complaint)
	_ = jsoniter.Unmarshal(raw, &out)

	delete(out, "studentId")
	if viewer != nil {
		out["isMyComplaint"] = viewer.Role == models.RoleStudent && viewer.UserID == complaint.AccountID
	}

	return out
}
