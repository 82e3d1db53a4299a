package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qatardigital.app/models"
	"qatardigital.app/pkg/testdb"
)

func sampleService(name string, category string, active bool, order int) *models.Service {
	return &models.Service{
		Name:         models.LocalizedText{En: name, Ar: "خدمة " + name},
		Description:  models.LocalizedText{En: "Description", Ar: "وصف"},
		Price:        models.LocalizedText{En: "Starting from 8,000 QAR", Ar: "ابتداءً من 8,000 ريال قطري"},
		Category:     category,
		Features:     models.LocalizedList{En: models.StringList{"a"}, Ar: models.StringList{"أ"}},
		IsActive:     active,
		DisplayOrder: order,
	}
}

func TestServiceActiveFilterAndOrder(t *testing.T) {
	testdb.New(t)
	repo := NewServiceRepository()

	require.NoError(t, repo.Create(sampleService("second", models.ServiceCategoryWebsite, true, 2)))
	require.NoError(t, repo.Create(sampleService("first", models.ServiceCategoryMobile, true, 1)))
	require.NoError(t, repo.Create(sampleService("hidden", models.ServiceCategoryMobile, false, 0)))

	active, err := repo.GetActive("")
	require.NoError(t, err)
	require.Len(t, active, 2, "inactive services are filtered server-side")
	assert.Equal(t, "first", active[0].Name.En, "display order wins over recency")

	all, err := repo.GetAll("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mobile, err := repo.GetActive(models.ServiceCategoryMobile)
	require.NoError(t, err)
	require.Len(t, mobile, 1)
	assert.Equal(t, "first", mobile[0].Name.En)
}

func TestServiceUpdateAndDelete(t *testing.T) {
	testdb.New(t)
	repo := NewServiceRepository()

	svc := sampleService("pkg", models.ServiceCategoryWebsite, true, 1)
	require.NoError(t, repo.Create(svc))

	updated, err := repo.Update(svc.ID, map[string]interface{}{"is_active": false, "display_order": 9})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, 9, updated.DisplayOrder)

	found, err := repo.Delete(svc.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.Delete(svc.ID)
	require.NoError(t, err)
	assert.False(t, found, "second delete reports not found")
}
