package job

import (
	"time"

	"gorm.io/datatypes"
)

// Job category labels used by the UI. The store accepts any text; these are
// not enforced as an enum.
const (
	CategoryDesign         = "Design"
	CategorySales          = "Sales"
	CategoryMarketing      = "Marketing"
	CategoryFinance        = "Finance"
	CategoryTechnology     = "Technology"
	CategoryEngineering    = "Engineering"
	CategoryBusiness       = "Business"
	CategoryHumanResources = "Human Resources"
)

// Employment type labels, likewise unenforced.
const (
	TypeFullTime   = "Full Time"
	TypePartTime   = "Part Time"
	TypeContract   = "Contract"
	TypeInternship = "Internship"
	TypeRemote     = "Remote"
)

// Job is a posting record. Requirements, responsibilities and tags are
// ordered text sequences stored as JSON columns.
type Job struct {
	ID               uint                        `gorm:"primaryKey;column:id" json:"id"`
	Title            string                      `gorm:"size:255;not null" json:"title"`
	Company          string                      `gorm:"size:255;not null" json:"company"`
	Location         string                      `gorm:"size:255;not null" json:"location"`
	Category         string                      `gorm:"size:100" json:"category"`
	Type             string                      `gorm:"size:50;not null" json:"type"`
	Salary           *string                     `gorm:"size:100" json:"salary"`
	Description      string                      `gorm:"type:text;not null" json:"description"`
	Requirements     datatypes.JSONSlice[string] `json:"requirements"`
	Responsibilities datatypes.JSONSlice[string] `json:"responsibilities"`
	Tags             datatypes.JSONSlice[string] `json:"tags"`
	CreatedAt        time.Time                   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time                   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}
