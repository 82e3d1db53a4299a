package models

// LocalizedText is a user-facing string stored once per supported language.
// Embedded with a GORM column prefix, so a field `Title LocalizedText` with
// prefix "title_" persists as title_en / title_ar.
type LocalizedText struct {
	En string `gorm:"type:text;not null" json:"en" validate:"required"`
	Ar string `gorm:"type:text;not null" json:"ar" validate:"required"`
}

// LocalizedList is the list counterpart: an ordered list of strings per
// language, each persisted as a JSON-encoded text column.
type LocalizedList struct {
	En StringList `gorm:"type:text;not null" json:"en" validate:"required,min=1"`
	Ar StringList `gorm:"type:text;not null" json:"ar" validate:"required,min=1"`
}
