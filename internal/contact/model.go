package contact

import (
	"time"
)

// ContactSubmission is a consumer's "connect with a lawyer" request. LawyerID
// is set when the submission came from a specific profile page.
type ContactSubmission struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Email     string    `gorm:"size:200;not null" json:"email"`
	Phone     string    `gorm:"size:50" json:"phone"`
	ZipCode   string    `gorm:"column:zip_code;size:10" json:"zip_code"`
	Message   string    `gorm:"type:text" json:"message"`
	LawyerID  *uint     `gorm:"column:lawyer_id;index" json:"lawyer_id"`
	Status    string    `gorm:"size:20;not null;default:'new';index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

type SubmitContactRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	ZipCode  string `json:"zip_code"`
	Message  string `json:"message"`
	LawyerID *uint  `json:"lawyer_id"`
}
