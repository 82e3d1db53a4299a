package models

// Application pipeline states. Status starts at pending and is the only
// field an admin may change after submission.
const (
	ApplicationStatusPending   = "pending"
	ApplicationStatusReviewing = "reviewing"
	ApplicationStatusInterview = "interview"
	ApplicationStatusHired     = "hired"
	ApplicationStatusRejected  = "rejected"
)

// ApplicationStatuses lists every allowed pipeline state.
var ApplicationStatuses = []string{
	ApplicationStatusPending,
	ApplicationStatusReviewing,
	ApplicationStatusInterview,
	ApplicationStatusHired,
	ApplicationStatusRejected,
}

// IsValidApplicationStatus reports whether s is one of the five states.
func IsValidApplicationStatus(s string) bool {
	for _, v := range ApplicationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// JobApplication is a candidate submission against a Career.
type JobApplication struct {
	BaseModel
	CareerID          string `gorm:"type:varchar(36);not null;index" json:"careerId"`
	FullName          string `gorm:"type:text;not null" json:"fullName"`
	Email             string `gorm:"type:text;not null" json:"email"`
	Phone             string `gorm:"type:text;not null" json:"phone"`
	CoverLetter       string `gorm:"type:text;not null" json:"coverLetter"`
	ResumeURL         string `gorm:"type:text" json:"resumeUrl"`
	LinkedinURL       string `gorm:"type:text" json:"linkedinUrl"`
	PortfolioURL      string `gorm:"type:text" json:"portfolioUrl"`
	YearsOfExperience string `gorm:"type:text;not null" json:"yearsOfExperience"`
	Status            string `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	Career Career `gorm:"foreignKey:CareerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
