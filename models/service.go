package models

// Service categories use the same mobile/website split as project types.
// The legacy admin form briefly sent "web"; "website" is canonical.
const (
	ServiceCategoryMobile  = "mobile"
	ServiceCategoryWebsite = "website"
)

// Service is a priced service package. Price is a display string
// ("Starting from 15,000 QAR"), not a numeric amount.
type Service struct {
	BaseModel
	Name         LocalizedText `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Description  LocalizedText `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	Price        LocalizedText `gorm:"embedded;embeddedPrefix:price_" json:"price"`
	Category     string        `gorm:"type:varchar(20);not null;index" json:"category"`
	Features     LocalizedList `gorm:"embedded;embeddedPrefix:features_" json:"features"`
	IsActive     bool          `gorm:"not null;default:true;index" json:"isActive"`
	DisplayOrder int           `gorm:"not null;default:0" json:"displayOrder"`
}
