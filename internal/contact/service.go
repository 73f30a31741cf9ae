package contact

import (
	"regexp"
	"strings"

	"gorm.io/gorm"

	"divorce-lawyers-api/internal/util"
)

var zipFormat = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

type ContactServiceAPI interface {
	Submit(req SubmitContactRequest) (*ContactSubmission, error)
	List(status string, from, to *string) ([]ContactSubmission, error)
	UpdateStatus(id uint, status string) error
}

type ContactService struct {
	DB *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{DB: db}
}

func (cs *ContactService) Submit(req SubmitContactRequest) (*ContactSubmission, error) {
	zip := strings.TrimSpace(req.ZipCode)
	if zip != "" && !zipFormat.MatchString(zip) {
		zip = ""
	}

	submission := ContactSubmission{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
		ZipCode:  zip,
		Message:  strings.TrimSpace(req.Message),
		LawyerID: req.LawyerID,
		Status:   "new",
	}
	if err := cs.DB.Create(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// List filters by status and an optional created_at window.
func (cs *ContactService) List(status string, from, to *string) ([]ContactSubmission, error) {
	start, hasStart, endExclusive, hasEnd, err := util.ParseDateRange(from, to)
	if err != nil {
		return nil, err
	}

	query := cs.DB.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if hasStart {
		query = query.Where("created_at >= ?", start)
	}
	if hasEnd {
		query = query.Where("created_at < ?", endExclusive)
	}

	var submissions []ContactSubmission
	if err := query.Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (cs *ContactService) UpdateStatus(id uint, status string) error {
	result := cs.DB.Model(&ContactSubmission{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
