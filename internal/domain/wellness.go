package domain

import "time"

// WellnessProgram is an ongoing employee wellness offering.
type WellnessProgram struct {
	BaseModel
	Name        string     `gorm:"size:255;not null" json:"name"`
	Description string     `gorm:"size:2000" json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Capacity    int        `json:"capacity"`
}

// MentalHealthResource is a curated support resource.
type MentalHealthResource struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"size:2000" json:"description"`
	URL         string `gorm:"size:1000" json:"url"`
	Contact     string `gorm:"size:255" json:"contact"`
}

// DEIResource is a diversity, equity, and inclusion resource.
type DEIResource struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"size:2000" json:"description"`
	URL         string `gorm:"size:1000" json:"url"`
	Category    string `gorm:"size:100" json:"category"`
}
