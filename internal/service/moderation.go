package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/india-resources/directory-api/internal/db"
)

type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "Pending"
	StatusApproved SubmissionStatus = "Approved"
)

// UserSubmission is one entry of a contributor's submissions view: the item
// fields plus where it currently lives. Rejected submissions are discarded
// and never listed.
type UserSubmission struct {
	ID uint `json:"id"`
	db.ItemFields
	Status SubmissionStatus `json:"status"`
}

// SubmitItem places a new item on the moderation queue, stamped with the
// submitting user. The caller passes the authenticated username, never
// client-supplied data.
func SubmitItem(dbConn *gorm.DB, fields db.ItemFields, submittedBy string) (*db.Submission, error) {
	if !fields.Kind.Valid() {
		return nil, fmt.Errorf("unknown item kind %q", fields.Kind)
	}
	if fields.Name == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}
	if submittedBy == "" {
		return nil, fmt.Errorf("submitter cannot be empty")
	}

	submission := db.Submission{ItemFields: fields, SubmittedBy: submittedBy}
	if err := dbConn.Create(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// ListPending returns the moderation queue in insertion order, optionally
// filtered by kind.
func ListPending(dbConn *gorm.DB, kind db.ItemKind) ([]db.Submission, error) {
	query := dbConn.Model(&db.Submission{})
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}

	var submissions []db.Submission
	if err := query.Order("id asc").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// ApproveSubmission moves a pending submission into the published catalog.
// The queue removal and the catalog insert happen in one transaction, so the
// item is never in both places or neither. A missing id fails with ErrNotFound.
func ApproveSubmission(dbConn *gorm.DB, id uint) (*db.Item, error) {
	var item *db.Item
	err := dbConn.Transaction(func(tx *gorm.DB) error {
		var submission db.Submission
		if err := tx.First(&submission, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		item = &db.Item{
			ItemFields:  submission.ItemFields,
			SubmittedBy: submission.SubmittedBy,
		}
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		return tx.Delete(&db.Submission{}, submission.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// RejectSubmission discards a pending submission. Nothing is retained.
// A missing id fails with ErrNotFound.
func RejectSubmission(dbConn *gorm.DB, id uint) error {
	result := dbConn.Delete(&db.Submission{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListUserSubmissions returns the union of a user's pending submissions and
// published items: pending entries first, then approved, each in insertion
// order.
func ListUserSubmissions(dbConn *gorm.DB, username string) ([]UserSubmission, error) {
	var pending []db.Submission
	if err := dbConn.Where("submitted_by = ?", username).Order("id asc").Find(&pending).Error; err != nil {
		return nil, err
	}

	var approved []db.Item
	if err := dbConn.Where("submitted_by = ?", username).Order("id asc").Find(&approved).Error; err != nil {
		return nil, err
	}

	entries := make([]UserSubmission, 0, len(pending)+len(approved))
	for _, s := range pending {
		entries = append(entries, UserSubmission{ID: s.ID, ItemFields: s.ItemFields, Status: StatusPending})
	}
	for _, i := range approved {
		entries = append(entries, UserSubmission{ID: i.ID, ItemFields: i.ItemFields, Status: StatusApproved})
	}
	return entries, nil
}
