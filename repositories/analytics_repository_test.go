package repositories

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qatardigital.app/pkg/apperrors"
	"qatardigital.app/pkg/testdb"
)

func TestAnalyticsIncrementCreatesAndAdds(t *testing.T) {
	testdb.New(t)
	repo := NewAnalyticsRepository()

	require.NoError(t, repo.IncrementPageViews("2024-11-01"))
	require.NoError(t, repo.IncrementPageViews("2024-11-01"))
	require.NoError(t, repo.IncrementWhatsappClicks("2024-11-01"))
	require.NoError(t, repo.IncrementPageViews("2024-11-02"))

	day1, err := repo.GetByDate("2024-11-01")
	require.NoError(t, err)
	assert.Equal(t, 2, day1.PageViews)
	assert.Equal(t, 1, day1.WhatsappClicks)
	assert.Equal(t, 0, day1.ContactSubmissions)

	day2, err := repo.GetByDate("2024-11-02")
	require.NoError(t, err)
	assert.Equal(t, 1, day2.PageViews)

	rows, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-11-02", rows[0].Date, "newest date first")
}

func TestAnalyticsIncrementConcurrent(t *testing.T) {
	testdb.New(t)
	repo := NewAnalyticsRepository()

	const workers = 20
	const perWorker = 5

	var wg sync.WaitGroup
	errs := make(chan error, workers*perWorker)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				errs <- repo.IncrementPageViews("2024-12-01")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	row, err := repo.GetByDate("2024-12-01")
	require.NoError(t, err)
	assert.Equal(t, workers*perWorker, row.PageViews, "no increments may be lost")
}

func TestAnalyticsGetByDateMissing(t *testing.T) {
	testdb.New(t)
	repo := NewAnalyticsRepository()

	_, err := repo.GetByDate("1999-01-01")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
