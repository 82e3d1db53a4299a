package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"qatardigital.app/configs/configsdatabase"
	"qatardigital.app/models"
)

// Counter columns on the analytics table.
const (
	CounterPageViews          = "page_views"
	CounterWhatsappClicks     = "whatsapp_clicks"
	CounterContactSubmissions = "contact_submissions"
)

// IAnalyticsRepository persists per-day counters. Increments are single
// upsert statements so concurrent requests on the same date never lose
// updates; the add happens in the store, not in application code.
type IAnalyticsRepository interface {
	IncrementPageViews(date string) error
	IncrementWhatsappClicks(date string) error
	IncrementContactSubmissions(date string) error
	GetAll() ([]models.Analytics, error)
	GetByDate(date string) (*models.Analytics, error)
}

type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository() IAnalyticsRepository {
	return &AnalyticsRepository{db: configsdatabase.GetDB()}
}

func (r *AnalyticsRepository) IncrementPageViews(date string) error {
	return r.increment(date, CounterPageViews)
}

func (r *AnalyticsRepository) IncrementWhatsappClicks(date string) error {
	return r.increment(date, CounterWhatsappClicks)
}

func (r *AnalyticsRepository) IncrementContactSubmissions(date string) error {
	return r.increment(date, CounterContactSubmissions)
}

// increment executes INSERT .. ON CONFLICT (date) DO UPDATE SET col = analytics.col + 1.
// Both Postgres and the sqlite test store resolve the existing-row reference
// by table name inside the conflict clause.
func (r *AnalyticsRepository) increment(date, column string) error {
	row := models.Analytics{Date: date}
	switch column {
	case CounterPageViews:
		row.PageViews = 1
	case CounterWhatsappClicks:
		row.WhatsappClicks = 1
	case CounterContactSubmissions:
		row.ContactSubmissions = 1
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			column: gorm.Expr("analytics." + column + " + 1"),
		}),
	}).Create(&row).Error
	return translateError(err)
}

func (r *AnalyticsRepository) GetAll() ([]models.Analytics, error) {
	var rows []models.Analytics
	err := r.db.Order("date DESC").Find(&rows).Error
	return rows, translateError(err)
}

func (r *AnalyticsRepository) GetByDate(date string) (*models.Analytics, error) {
	var row models.Analytics
	if err := r.db.First(&row, "date = ?", date).Error; err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}
