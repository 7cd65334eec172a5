package models

// Client represents a client testimonial shown on the landing page
type Client struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Designation string `gorm:"type:varchar(100);not null" json:"designation"`
	Description string `gorm:"type:varchar(1000);not null" json:"description"`
	Image       string `gorm:"type:varchar(255);not null" json:"image"` // opaque blob locator
}
