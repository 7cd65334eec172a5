package models

// Project represents a showcased portfolio project on the landing page
type Project struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:varchar(1000);not null" json:"description"`
	Image       string `gorm:"type:varchar(255);not null" json:"image"` // opaque blob locator, not validated
	Category    string `gorm:"type:varchar(100)" json:"category,omitempty"`
}
