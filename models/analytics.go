package models

// Analytics holds one row of counters per calendar date (YYYY-MM-DD).
// Counters are only ever incremented, via an atomic upsert in the
// repository, never read-modify-written in application code.
type Analytics struct {
	BaseModel
	Date               string `gorm:"type:varchar(10);not null;uniqueIndex" json:"date"`
	PageViews          int    `gorm:"not null;default:0" json:"pageViews"`
	WhatsappClicks     int    `gorm:"not null;default:0" json:"whatsappClicks"`
	ContactSubmissions int    `gorm:"not null;default:0" json:"contactSubmissions"`
}

func (Analytics) TableName() string { return "analytics" }
