package models

// ContactSubmission is a lead captured from the public contact form.
// Submissions are immutable: the API exposes no update or delete for them.
type ContactSubmission struct {
	BaseModel
	Name               string `gorm:"type:text;not null" json:"name"`
	Company            string `gorm:"type:text;not null" json:"company"`
	Email              string `gorm:"type:text;not null" json:"email"`
	Phone              string `gorm:"type:text;not null" json:"phone"`
	ServiceNeeded      string `gorm:"type:text;not null" json:"serviceNeeded"`
	ProjectDescription string `gorm:"type:text;not null" json:"projectDescription"`
}
