package location

import (
	"time"
)

type State struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Abbreviation string    `gorm:"size:2;not null;uniqueIndex" json:"abbreviation"`
	Slug         string    `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (State) TableName() string {
	return "states"
}

type City struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"size:200;not null;index" json:"name"`
	Slug       string    `gorm:"size:200;not null;index" json:"slug"`
	Latitude   *float64  `gorm:"column:latitude" json:"latitude"`
	Longitude  *float64  `gorm:"column:longitude" json:"longitude"`
	Population *int      `gorm:"column:population" json:"population"`
	StateID    *uint     `gorm:"column:state_id;index" json:"state_id"`
	State      *State    `gorm:"foreignKey:StateID" json:"state,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (City) TableName() string {
	return "cities"
}

type ZipCode struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Code      string    `gorm:"column:zip_code;size:10;not null;uniqueIndex" json:"zip_code"`
	CityID    *uint     `gorm:"column:city_id;index" json:"city_id"`
	City      *City     `gorm:"foreignKey:CityID" json:"city,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (ZipCode) TableName() string {
	return "zip_codes"
}

// Suggestion is one autocomplete entry.
type Suggestion struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Type  string `json:"type"`
}
