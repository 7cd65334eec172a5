package models

// Lead status lifecycle
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusConverted = "converted"
)

// LeadStatuses lists every status a lead may carry, in lifecycle order.
var LeadStatuses = []string{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQualified,
	LeadStatusConverted,
}

// IsValidLeadStatus reports whether s is one of the enumerated lead statuses.
func IsValidLeadStatus(s string) bool {
	for _, status := range LeadStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Lead represents a contact record submitted through the public landing page
type Lead struct {
	BaseModel
	Name    string `gorm:"type:varchar(100);not null" json:"name"`
	Email   string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"` // stored lowercase
	Phone   string `gorm:"type:varchar(30);not null" json:"phone"`
	City    string `gorm:"type:varchar(100)" json:"city,omitempty"`
	Company string `gorm:"type:varchar(100)" json:"company,omitempty"`
	Message string `gorm:"type:varchar(1000)" json:"message,omitempty"`
	Status  string `gorm:"type:varchar(20);default:'new';index" json:"status"` // Status: new, contacted, qualified, converted
}
