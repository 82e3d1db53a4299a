package models

// Only open positions are listed publicly.
const (
	CareerStatusOpen   = "open"
	CareerStatusClosed = "closed"
)

// Career is a job opening.
type Career struct {
	BaseModel
	Title            LocalizedText `gorm:"embedded;embeddedPrefix:title_" json:"title"`
	Department       LocalizedText `gorm:"embedded;embeddedPrefix:department_" json:"department"`
	Location         LocalizedText `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	Type             LocalizedText `gorm:"embedded;embeddedPrefix:type_" json:"type"`
	Description      LocalizedText `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	Requirements     LocalizedList `gorm:"embedded;embeddedPrefix:requirements_" json:"requirements"`
	Responsibilities LocalizedList `gorm:"embedded;embeddedPrefix:responsibilities_" json:"responsibilities"`
	Status           string        `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`
}
