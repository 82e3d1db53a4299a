package models

// Testimonial is a client quote shown on the home page. Rating is kept as a
// single-digit string "1".."5" to match how the site renders star rows.
type Testimonial struct {
	BaseModel
	ClientName     LocalizedText `gorm:"embedded;embeddedPrefix:client_name_" json:"clientName"`
	ClientPosition LocalizedText `gorm:"embedded;embeddedPrefix:client_position_" json:"clientPosition"`
	ClientCompany  LocalizedText `gorm:"embedded;embeddedPrefix:client_company_" json:"clientCompany"`
	Rating         string        `gorm:"type:varchar(1);not null" json:"rating"`
	Testimonial    LocalizedText `gorm:"embedded;embeddedPrefix:testimonial_" json:"testimonial"`
	ProjectType    string        `gorm:"type:varchar(20);not null;index" json:"projectType"`
	AvatarURL      string        `gorm:"type:text" json:"avatarUrl"`
}
