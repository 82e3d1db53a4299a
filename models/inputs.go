package models

import "time"

// CreateInput types mirror the persisted shapes minus the server-generated
// fields (id, createdAt, defaulted status). Inbound payloads are decoded into
// these and validated before anything touches the store.

type ContactSubmissionInput struct {
	Name               string `json:"name" validate:"required,min=2"`
	Company            string `json:"company" validate:"required,min=2"`
	Email              string `json:"email" validate:"required,email"`
	Phone              string `json:"phone" validate:"required,min=8"`
	ServiceNeeded      string `json:"serviceNeeded" validate:"required"`
	ProjectDescription string `json:"projectDescription" validate:"required,min=10"`
}

type PortfolioProjectInput struct {
	Title        LocalizedText `json:"title"`
	Category     LocalizedText `json:"category"`
	Description  LocalizedText `json:"description"`
	Type         string        `json:"type" validate:"required,oneof=mobile website"`
	Client       LocalizedText `json:"client"`
	Challenge    LocalizedText `json:"challenge"`
	Solution     LocalizedText `json:"solution"`
	Results      LocalizedText `json:"results"`
	Technologies StringList    `json:"technologies" validate:"required,min=1"`
	ImageURL     string        `json:"imageUrl" validate:"required"`
}

type ServiceInput struct {
	Name         LocalizedText `json:"name"`
	Description  LocalizedText `json:"description"`
	Price        LocalizedText `json:"price"`
	Category     string        `json:"category" validate:"required,oneof=mobile website"`
	Features     LocalizedList `json:"features"`
	IsActive     *bool         `json:"isActive"`
	DisplayOrder int           `json:"displayOrder" validate:"min=0"`
}

// Active reports the requested flag, defaulting to true when omitted.
func (s *ServiceInput) Active() bool {
	if s.IsActive == nil {
		return true
	}
	return *s.IsActive
}

type TestimonialInput struct {
	ClientName     LocalizedText `json:"clientName"`
	ClientPosition LocalizedText `json:"clientPosition"`
	ClientCompany  LocalizedText `json:"clientCompany"`
	Rating         string        `json:"rating" validate:"required,oneof=1 2 3 4 5"`
	Testimonial    LocalizedText `json:"testimonial"`
	ProjectType    string        `json:"projectType" validate:"required,oneof=mobile website"`
	AvatarURL      string        `json:"avatarUrl" validate:"omitempty,url"`
}

type BlogPostInput struct {
	Title       LocalizedText `json:"title"`
	Slug        string        `json:"slug" validate:"required,min=1"`
	Excerpt     LocalizedText `json:"excerpt"`
	Content     LocalizedText `json:"content"`
	Category    LocalizedText `json:"category"`
	Author      LocalizedText `json:"author"`
	ImageURL    string        `json:"imageUrl" validate:"required"`
	PublishedAt *time.Time    `json:"publishedAt"` // nil means "now"
}

type CareerInput struct {
	Title            LocalizedText `json:"title"`
	Department       LocalizedText `json:"department"`
	Location         LocalizedText `json:"location"`
	Type             LocalizedText `json:"type"`
	Description      LocalizedText `json:"description"`
	Requirements     LocalizedList `json:"requirements"`
	Responsibilities LocalizedList `json:"responsibilities"`
	Status           string        `json:"status" validate:"omitempty,oneof=open closed"`
}

type JobApplicationInput struct {
	CareerID          string `json:"careerId" validate:"required"`
	FullName          string `json:"fullName" validate:"required,min=2"`
	Email             string `json:"email" validate:"required,email"`
	Phone             string `json:"phone" validate:"required,min=8"`
	CoverLetter       string `json:"coverLetter" validate:"required,min=50"`
	ResumeURL         string `json:"resumeUrl" validate:"omitempty,url"`
	LinkedinURL       string `json:"linkedinUrl" validate:"omitempty,url"`
	PortfolioURL      string `json:"portfolioUrl" validate:"omitempty,url"`
	YearsOfExperience string `json:"yearsOfExperience" validate:"required"`
}

type ApplicationStatusInput struct {
	Status string `json:"status" validate:"required"`
}
