package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qatardigital.app/models"
	"qatardigital.app/pkg/apperrors"
	"qatardigital.app/pkg/testdb"
)

func samplePost(slug string, publishedAt time.Time) *models.BlogPost {
	return &models.BlogPost{
		Title:       models.LocalizedText{En: "Title " + slug, Ar: "عنوان " + slug},
		Slug:        slug,
		Excerpt:     models.LocalizedText{En: "Excerpt", Ar: "مقتطف"},
		Content:     models.LocalizedText{En: "Content", Ar: "محتوى"},
		Category:    models.LocalizedText{En: "Category", Ar: "فئة"},
		Author:      models.LocalizedText{En: "Team", Ar: "الفريق"},
		ImageURL:    "/assets/" + slug + ".jpg",
		PublishedAt: publishedAt,
	}
}

func TestBlogSlugRoundTrip(t *testing.T) {
	testdb.New(t)
	repo := NewBlogRepository()

	post := samplePost("hello-doha", time.Now())
	require.NoError(t, repo.Create(post))
	assert.NotEmpty(t, post.ID, "id is server-generated")

	got, err := repo.GetBySlug("hello-doha")
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)
	assert.Equal(t, post.Title, got.Title)
	assert.Equal(t, post.Content, got.Content)
}

func TestBlogDuplicateSlugRejected(t *testing.T) {
	testdb.New(t)
	repo := NewBlogRepository()

	require.NoError(t, repo.Create(samplePost("unique-slug", time.Now())))

	err := repo.Create(samplePost("unique-slug", time.Now()))
	assert.ErrorIs(t, err, apperrors.ErrDuplicate, "second create with the same slug must fail, not overwrite")

	posts, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestBlogOrderedByPublishDate(t *testing.T) {
	testdb.New(t)
	repo := NewBlogRepository()

	older := samplePost("older", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := samplePost("newer", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(older))
	require.NoError(t, repo.Create(newer))

	posts, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "newer", posts[0].Slug)
}

func TestBlogGetBySlugMissing(t *testing.T) {
	testdb.New(t)
	repo := NewBlogRepository()

	_, err := repo.GetBySlug("nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
