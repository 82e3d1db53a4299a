package services

import (
	"time"

	"qatardigital.app/models"
	"qatardigital.app/repositories"
)

// IAnalyticsService tracks the per-day counters. Track* methods key on the
// current server-local date.
type IAnalyticsService interface {
	TrackPageView() error
	TrackWhatsappClick() error
	TrackContactSubmission() error
	GetAnalytics() ([]models.Analytics, error)
}

type AnalyticsService struct {
	repo repositories.IAnalyticsRepository
	now  func() time.Time
}

func NewAnalyticsService() IAnalyticsService {
	return &AnalyticsService{
		repo: repositories.NewAnalyticsRepository(),
		now:  time.Now,
	}
}

func (s *AnalyticsService) today() string {
	return s.now().Format("2006-01-02")
}

func (s *AnalyticsService) TrackPageView() error {
	return s.repo.IncrementPageViews(s.today())
}

func (s *AnalyticsService) TrackWhatsappClick() error {
	return s.repo.IncrementWhatsappClicks(s.today())
}

func (s *AnalyticsService) TrackContactSubmission() error {
	return s.repo.IncrementContactSubmissions(s.today())
}

func (s *AnalyticsService) GetAnalytics() ([]models.Analytics, error) {
	return s.repo.GetAll()
}
