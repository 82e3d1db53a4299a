package routes

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qatardigital.app/models"
)

func localized(en, ar string) fiber.Map {
	return fiber.Map{"en": en, "ar": ar}
}

func validContactPayload() fiber.Map {
	return fiber.Map{
		"name":               "Ahmed",
		"company":            "Qatar Cafe Group",
		"email":              "ahmed@example.com",
		"phone":              "+97455512345",
		"serviceNeeded":      "mobile app",
		"projectDescription": "We need an ordering app for our three branches.",
	}
}

func TestContactRejectsInvalidEmail(t *testing.T) {
	app, db := newTestApp(t)

	payload := validContactPayload()
	payload["email"] = "not-an-email"
	resp := request(t, app, http.MethodPost, "/api/contact", payload, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]interface{}
	decode(t, resp, &body)
	assert.Equal(t, "Validation failed", body["error"])
	assert.NotNil(t, body["details"], "validation errors carry field detail")

	var count int64
	require.NoError(t, db.Model(&models.ContactSubmission{}).Count(&count).Error)
	assert.Zero(t, count, "rejected payload must not create a row")
}

func TestContactCreateAndAdminReadout(t *testing.T) {
	app, _ := newTestApp(t)

	resp := request(t, app, http.MethodPost, "/api/contact", validContactPayload(), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created models.ContactSubmission
	decode(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "ahmed@example.com", created.Email)

	cookie := loginAdmin(t, app)
	resp = request(t, app, http.MethodGet, "/api/admin/contact", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var submissions []models.ContactSubmission
	decode(t, resp, &submissions)
	require.Len(t, submissions, 1)
	assert.Equal(t, created.ID, submissions[0].ID)
}

func TestServicesPublicListHidesInactive(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := loginAdmin(t, app)

	servicePayload := func(name string, active bool) fiber.Map {
		return fiber.Map{
			"name":         localized(name, "خدمة"),
			"description":  localized("Description", "وصف"),
			"price":        localized("Starting from 8,000 QAR", "ابتداءً من 8,000 ريال قطري"),
			"category":     "website",
			"features":     fiber.Map{"en": []string{"a"}, "ar": []string{"أ"}},
			"isActive":     active,
			"displayOrder": 1,
		}
	}

	resp := request(t, app, http.MethodPost, "/api/admin/services", servicePayload("Visible", true), cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = request(t, app, http.MethodPost, "/api/admin/services", servicePayload("Hidden", false), cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var public []models.Service
	resp = request(t, app, http.MethodGet, "/api/services", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &public)
	require.Len(t, public, 1)
	assert.Equal(t, "Visible", public[0].Name.En)

	var all []models.Service
	resp = request(t, app, http.MethodGet, "/api/admin/services", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &all)
	assert.Len(t, all, 2)
}

func validCareerPayload(status string) fiber.Map {
	return fiber.Map{
		"title":            localized("Developer", "مطور"),
		"department":       localized("Engineering", "الهندسة"),
		"location":         localized("Doha, Qatar", "الدوحة، قطر"),
		"type":             localized("Full-time", "دوام كامل"),
		"description":      localized("Build things", "ابنِ الأشياء"),
		"requirements":     fiber.Map{"en": []string{"Go"}, "ar": []string{"Go"}},
		"responsibilities": fiber.Map{"en": []string{"Ship"}, "ar": []string{"سلّم"}},
		"status":           status,
	}
}

func TestCareersPublicListHidesClosed(t *testing.T) {
	app, _ := newTestApp(t)

	resp := request(t, app, http.MethodPost, "/api/careers", validCareerPayload("open"), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var closed models.Career
	resp = request(t, app, http.MethodPost, "/api/careers", validCareerPayload("closed"), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &closed)

	var public []models.Career
	resp = request(t, app, http.MethodGet, "/api/careers", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &public)
	require.Len(t, public, 1)
	assert.Equal(t, models.CareerStatusOpen, public[0].Status)

	// A closed position is publicly indistinguishable from a missing one.
	resp = request(t, app, http.MethodGet, "/api/careers/"+closed.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cookie := loginAdmin(t, app)
	var all []models.Career
	resp = request(t, app, http.MethodGet, "/api/admin/careers", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &all)
	assert.Len(t, all, 2)
}

func TestBlogSlugRoundTripAndUniqueness(t *testing.T) {
	app, _ := newTestApp(t)

	post := fiber.Map{
		"title":    localized("Hello Doha", "مرحبا الدوحة"),
		"slug":     "hello-doha",
		"excerpt":  localized("Excerpt", "مقتطف"),
		"content":  localized("Full content here", "المحتوى الكامل هنا"),
		"category": localized("News", "أخبار"),
		"author":   localized("Team", "الفريق"),
		"imageUrl": "/assets/hello.jpg",
	}

	resp := request(t, app, http.MethodPost, "/api/blog", post, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched models.BlogPost
	resp = request(t, app, http.MethodGet, "/api/blog/hello-doha", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &fetched)
	assert.Equal(t, "Hello Doha", fetched.Title.En)
	assert.Equal(t, "المحتوى الكامل هنا", fetched.Content.Ar)

	// Same slug again must fail loudly, not overwrite.
	resp = request(t, app, http.MethodPost, "/api/blog", post, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestJobApplicationLifecycle(t *testing.T) {
	app, _ := newTestApp(t)

	var career models.Career
	resp := request(t, app, http.MethodPost, "/api/careers", validCareerPayload("open"), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &career)

	application := fiber.Map{
		"careerId":          career.ID,
		"fullName":          "Sara",
		"email":             "sara@example.com",
		"phone":             "+97455598765",
		"coverLetter":       "I have shipped several bilingual mobile applications for clients across the Gulf region.",
		"yearsOfExperience": "5+ years",
		"status":            "hired", // must be ignored
	}
	resp = request(t, app, http.MethodPost, "/api/job-applications", application, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created models.JobApplication
	decode(t, resp, &created)
	assert.Equal(t, models.ApplicationStatusPending, created.Status, "status always starts pending")

	// Unknown career is rejected.
	bad := fiber.Map{}
	for k, v := range application {
		bad[k] = v
	}
	bad["careerId"] = "unknown-career"
	resp = request(t, app, http.MethodPost, "/api/job-applications", bad, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	cookie := loginAdmin(t, app)

	// Invalid status value is rejected with field-level detail.
	resp = request(t, app, http.MethodPatch, "/api/admin/job-applications/"+created.ID+"/status",
		fiber.Map{"status": "accepted"}, cookie)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errBody map[string]interface{}
	decode(t, resp, &errBody)
	assert.Equal(t, "Validation failed", errBody["error"])
	details, ok := errBody["details"].([]interface{})
	require.True(t, ok, "details carry field errors")
	require.Len(t, details, 1)
	first, ok := details[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "status", first["field"])

	// Valid transition updates only the status.
	resp = request(t, app, http.MethodPatch, "/api/admin/job-applications/"+created.ID+"/status",
		fiber.Map{"status": "interview"}, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.JobApplication
	decode(t, resp, &updated)
	assert.Equal(t, models.ApplicationStatusInterview, updated.Status)
	assert.Equal(t, created.FullName, updated.FullName)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.CoverLetter, updated.CoverLetter)
}

func TestPortfolioAdminMutations(t *testing.T) {
	app, _ := newTestApp(t)

	project := fiber.Map{
		"title":        localized("Qatar Cafe Mobile App", "تطبيق مقهى قطر"),
		"category":     localized("Restaurant Ordering App", "تطبيق طلب مطعم"),
		"description":  localized("Online ordering", "طلب عبر الإنترنت"),
		"type":         "mobile",
		"client":       localized("Qatar Cafe Group", "مجموعة مقهى قطر"),
		"challenge":    localized("Long queues", "طوابير طويلة"),
		"solution":     localized("An ordering app", "تطبيق طلبات"),
		"results":      localized("Happier customers", "عملاء أسعد"),
		"technologies": []string{"React Native", "PostgreSQL"},
		"imageUrl":     "/assets/cafe.png",
	}
	resp := request(t, app, http.MethodPost, "/api/portfolio", project, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created models.PortfolioProject
	decode(t, resp, &created)

	// Type filter on the public gallery.
	var mobile []models.PortfolioProject
	resp = request(t, app, http.MethodGet, "/api/portfolio?type=mobile", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &mobile)
	assert.Len(t, mobile, 1)

	var website []models.PortfolioProject
	resp = request(t, app, http.MethodGet, "/api/portfolio?type=website", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &website)
	assert.Empty(t, website)

	cookie := loginAdmin(t, app)

	project["title"] = localized("Renamed", "معاد التسمية")
	resp = request(t, app, http.MethodPut, "/api/admin/portfolio/"+created.ID, project, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.PortfolioProject
	decode(t, resp, &updated)
	assert.Equal(t, "Renamed", updated.Title.En)

	resp = request(t, app, http.MethodDelete, "/api/admin/portfolio/"+created.ID, nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = request(t, app, http.MethodGet, "/api/portfolio/"+created.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAnalyticsEndpointsCount(t *testing.T) {
	app, _ := newTestApp(t)

	for i := 0; i < 3; i++ {
		resp := request(t, app, http.MethodPost, "/api/analytics/pageview", nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp := request(t, app, http.MethodPost, "/api/analytics/whatsapp", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = request(t, app, http.MethodPost, "/api/analytics/contact", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := loginAdmin(t, app)
	resp = request(t, app, http.MethodGet, "/api/admin/analytics", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []models.Analytics
	decode(t, resp, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].PageViews)
	assert.Equal(t, 1, rows[0].WhatsappClicks)
	assert.Equal(t, 1, rows[0].ContactSubmissions)
}
