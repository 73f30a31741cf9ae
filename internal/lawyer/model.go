package lawyer

import (
	"time"

	"github.com/lib/pq"

	"divorce-lawyers-api/internal/dma"
	"divorce-lawyers-api/internal/subscription"
)

type LawFirm struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:300;not null" json:"name"`
	Slug      string    `gorm:"size:300;not null;uniqueIndex" json:"slug"`
	Address   string    `gorm:"size:500" json:"address"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Email     string    `gorm:"size:200" json:"email"`
	Website   string    `gorm:"size:300" json:"website"`
	Rating    *float64  `gorm:"column:rating" json:"rating"`
	Verified  bool      `gorm:"not null;default:false" json:"verified"`
	Featured  bool      `gorm:"not null;default:false" json:"featured"`
	ZipCode   string    `gorm:"column:zip_code;size:10;index" json:"zip_code"`
	CityID    *uint     `gorm:"column:city_id;index" json:"city_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (LawFirm) TableName() string {
	return "law_firms"
}

type Lawyer struct {
	ID              uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName       string         `gorm:"size:100;not null" json:"first_name"`
	LastName        string         `gorm:"size:100;not null" json:"last_name"`
	Slug            string         `gorm:"size:300;not null;uniqueIndex" json:"slug"`
	Title           string         `gorm:"size:200" json:"title"`
	Bio             string         `gorm:"type:text" json:"bio"`
	Email           string         `gorm:"size:200" json:"email"`
	Phone           string         `gorm:"size:50" json:"phone"`
	PhotoURL        string         `gorm:"column:photo_url;size:500" json:"photo_url"`
	BarNumber       string         `gorm:"column:bar_number;size:50" json:"bar_number"`
	YearsExperience *int           `gorm:"column:years_experience" json:"years_experience"`
	OfficeZipCode   string         `gorm:"column:office_zip_code;size:10;index" json:"office_zip_code"`
	LawFirmID       *uint          `gorm:"column:law_firm_id;index" json:"law_firm_id"`
	LawFirm         *LawFirm       `gorm:"foreignKey:LawFirmID" json:"law_firm,omitempty"`
	SubscriptionType string        `gorm:"column:subscription_type;size:100;not null;default:'free'" json:"subscription_type"`
	Specializations pq.StringArray `gorm:"type:text[];column:specializations;default:'{}'" json:"specializations"`
	Languages       pq.StringArray `gorm:"type:text[];column:languages;default:'{}'" json:"languages"`
	BarAdmissions   pq.StringArray `gorm:"type:text[];column:bar_admissions;default:'{}'" json:"bar_admissions"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (Lawyer) TableName() string {
	return "lawyers"
}

// LawyerServiceArea associates a lawyer with a market they explicitly serve,
// independent of office address.
type LawyerServiceArea struct {
	ID       uint `gorm:"primaryKey;autoIncrement" json:"id"`
	LawyerID uint `gorm:"column:lawyer_id;not null;uniqueIndex:uq_lawyer_service_area" json:"lawyer_id"`
	DMAID    uint `gorm:"column:dma_id;not null;uniqueIndex:uq_lawyer_service_area" json:"dma_id"`
}

func (LawyerServiceArea) TableName() string {
	return "lawyer_service_areas"
}

// FallbackLawyer is an admin-curated safety-net entry: these lawyers are
// served when a lookup finds nothing for the visitor's location. Lower
// DisplayOrder appears first.
type FallbackLawyer struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	LawyerID     uint      `gorm:"column:lawyer_id;not null;uniqueIndex" json:"lawyer_id"`
	Lawyer       *Lawyer   `gorm:"foreignKey:LawyerID" json:"lawyer,omitempty"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

func (FallbackLawyer) TableName() string {
	return "fallback_lawyers"
}

// LookupResult is the common payload of every lawyer lookup endpoint. DMA is
// nil when the search ran without market scoping (prefix or exact-zip
// fallbacks).
type LookupResult struct {
	Lawyers               []Lawyer                        `json:"lawyers"`
	GroupedBySubscription map[string][]Lawyer             `json:"groupedBySubscription"`
	DMA                   *dma.Info                       `json:"dma"`
	SubscriptionTypes     []subscription.SubscriptionType `json:"subscriptionTypes"`
}
