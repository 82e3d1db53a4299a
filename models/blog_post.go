package models

import "time"

// BlogPost is an article. Slug is the public lookup key and must be unique;
// PublishedAt defaults to creation time but may be set explicitly to backdate.
type BlogPost struct {
	BaseModel
	Title       LocalizedText `gorm:"embedded;embeddedPrefix:title_" json:"title"`
	Slug        string        `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Excerpt     LocalizedText `gorm:"embedded;embeddedPrefix:excerpt_" json:"excerpt"`
	Content     LocalizedText `gorm:"embedded;embeddedPrefix:content_" json:"content"`
	Category    LocalizedText `gorm:"embedded;embeddedPrefix:category_" json:"category"`
	Author      LocalizedText `gorm:"embedded;embeddedPrefix:author_" json:"author"`
	ImageURL    string        `gorm:"type:text;not null" json:"imageUrl"`
	PublishedAt time.Time     `gorm:"not null;index" json:"publishedAt"`
}
