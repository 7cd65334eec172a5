package models

// Subscriber represents a newsletter opt-in
type Subscriber struct {
	BaseModel
	Email      string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"` // stored lowercase
	Subscribed *bool  `gorm:"default:true" json:"subscribed"`                      // pointer so an explicit false survives GORM defaults
}
