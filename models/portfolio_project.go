package models

// Project type decides which portfolio gallery tab a case study appears under.
const (
	ProjectTypeMobile  = "mobile"
	ProjectTypeWebsite = "website"
)

// PortfolioProject is a published case study.
type PortfolioProject struct {
	BaseModel
	Title        LocalizedText `gorm:"embedded;embeddedPrefix:title_" json:"title"`
	Category     LocalizedText `gorm:"embedded;embeddedPrefix:category_" json:"category"`
	Description  LocalizedText `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	Type         string        `gorm:"type:varchar(20);not null;index" json:"type"`
	Client       LocalizedText `gorm:"embedded;embeddedPrefix:client_" json:"client"`
	Challenge    LocalizedText `gorm:"embedded;embeddedPrefix:challenge_" json:"challenge"`
	Solution     LocalizedText `gorm:"embedded;embeddedPrefix:solution_" json:"solution"`
	Results      LocalizedText `gorm:"embedded;embeddedPrefix:results_" json:"results"`
	Technologies StringList    `gorm:"type:text;not null" json:"technologies"`
	ImageURL     string        `gorm:"type:text;not null" json:"imageUrl"`
}
