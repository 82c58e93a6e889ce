package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kartiksharma/portfolio/internal/utils/collectionutils"
	"github.com/kartiksharma/portfolio/models"
)

func TestMemoryStoreProjectLifecycle(t *testing.T) {
	s := NewMemoryStore()

	created, err := s.CreateProject(models.ProjectInput{
		Title:        "Telemetry Dashboard",
		Description:  "Realtime charts",
		Technologies: []string{"Go", "React"},
		LiveURL:      strPtr(""),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "false", created.Featured, "featured should default to false")
	require.Equal(t, "0", created.Order, "order should default to 0")
	require.Nil(t, created.LiveURL, "empty optional fields collapse to null")

	got, err := s.Project(created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Title, got.Title)

	updated, err := s.UpdateProject(created.ID, models.ProjectInput{
		Title:        "Telemetry Dashboard v2",
		Description:  "Realtime charts",
		Technologies: []string{"Go"},
		Featured:     "true",
		Order:        "3",
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "true", updated.Featured)
	require.Equal(t, created.CreatedAt, updated.CreatedAt, "createdAt must survive updates")

	deleted, err := s.DeleteProject(created.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = s.DeleteProject(created.ID)
	require.NoError(t, err)
	require.False(t, deleted, "second delete reports a miss, not an error")

	_, err = s.Project(created.ID)
	require.ErrorIs(t, err, ErrNoRecord)
}

func TestMemoryStoreUpdateMissingProject(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.UpdateProject("no-such-id", models.ProjectInput{Title: "x", Description: "y"})
	require.ErrorIs(t, err, ErrNoRecord)
}

func TestMemoryStoreProjectsSortNumerically(t *testing.T) {
	s := NewMemoryStore()

	for _, order := range []string{"2", "10", "1"} {
		_, err := s.CreateProject(models.ProjectInput{
			Title:       "p" + order,
			Description: "d",
			Order:       order,
		})
		require.NoError(t, err)
	}

	projects, err := s.Projects()
	require.NoError(t, err)
	require.Len(t, projects, 3)

	var orders []string
	for _, p := range projects {
		orders = append(orders, p.Order)
	}
	require.Equal(t, []string{"1", "2", "10"}, orders, "order compares as a number, not a string")
}

func TestMemoryStoreBlogPostSlugUniqueness(t *testing.T) {
	s := NewMemoryStore()

	first, err := s.CreateBlogPost(models.BlogPostInput{
		Title: "First", Slug: "first-post", Excerpt: "e", Content: "c",
	})
	require.NoError(t, err)

	_, err = s.CreateBlogPost(models.BlogPostInput{
		Title: "Copy", Slug: "first-post", Excerpt: "e", Content: "c",
	})
	require.ErrorIs(t, err, ErrDuplicateSlug)

	second, err := s.CreateBlogPost(models.BlogPostInput{
		Title: "Second", Slug: "second-post", Excerpt: "e", Content: "c",
	})
	require.NoError(t, err)

	_, err = s.UpdateBlogPost(second.ID, models.BlogPostInput{
		Title: "Second", Slug: "first-post", Excerpt: "e", Content: "c",
	})
	require.ErrorIs(t, err, ErrDuplicateSlug)

	// Keeping your own slug is not a collision.
	_, err = s.UpdateBlogPost(first.ID, models.BlogPostInput{
		Title: "First (edited)", Slug: "first-post", Excerpt: "e", Content: "c",
	})
	require.NoError(t, err)
}

func TestMemoryStoreBlogPostsPublishedFilter(t *testing.T) {
	s := NewMemoryStore()

	older := time.Now().Add(-time.Hour)
	newer := time.Now()

	_, err := s.CreateBlogPost(models.BlogPostInput{
		Title: "Draft", Slug: "draft", Excerpt: "e", Content: "c",
	})
	require.NoError(t, err)

	_, err = s.CreateBlogPost(models.BlogPostInput{
		Title: "Old", Slug: "old", Excerpt: "e", Content: "c",
		Published: "true", PublishedAt: &older,
	})
	require.NoError(t, err)

	_, err = s.CreateBlogPost(models.BlogPostInput{
		Title: "New", Slug: "new", Excerpt: "e", Content: "c",
		Published: "true", PublishedAt: &newer,
	})
	require.NoError(t, err)

	all, err := s.BlogPosts(false)
	require.NoError(t, err)
	require.Len(t, all, 3)

	published, err := s.BlogPosts(true)
	require.NoError(t, err)
	require.Len(t, published, 2)
	require.Equal(t, "New", published[0].Title, "published listing is newest publish date first")
	require.Equal(t, "Old", published[1].Title)
}

func TestMemoryStoreBlogPostBySlug(t *testing.T) {
	s := NewMemoryStore()

	created, err := s.CreateBlogPost(models.BlogPostInput{
		Title: "Findable", Slug: "findable", Excerpt: "e", Content: "c",
	})
	require.NoError(t, err)

	got, err := s.BlogPostBySlug("findable")
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)

	_, err = s.BlogPostBySlug("missing")
	require.ErrorIs(t, err, ErrNoRecord)
}

func TestMemoryStoreContactMessagesNewestFirst(t *testing.T) {
	s := NewMemoryStore()

	for _, name := range []string{"first", "second", "third"} {
		_, err := s.CreateContactMessage(models.ContactMessageInput{
			Name: name, Email: name + "@example.com", Message: "hello",
		})
		require.NoError(t, err)
	}

	messages, err := s.ContactMessages()
	require.NoError(t, err)
	require.Len(t, messages, 3)
	require.Equal(t, "third", messages[0].Name)
	require.Equal(t, "first", messages[2].Name)
}

func TestMemoryStoreUsers(t *testing.T) {
	s := NewMemoryStore()

	user, err := s.CreateUser("admin", []byte("hash"))
	require.NoError(t, err)
	require.Equal(t, int64(1), user.ID)

	_, err = s.CreateUser("admin", []byte("other"))
	require.ErrorIs(t, err, ErrDuplicateUsername)

	byName, err := s.UserByUsername("admin")
	require.NoError(t, err)
	require.Equal(t, user.ID, byName.ID)

	byID, err := s.User(user.ID)
	require.NoError(t, err)
	require.Equal(t, "admin", byID.Username)

	_, err = s.User(99)
	require.ErrorIs(t, err, ErrNoRecord)
}

func TestMemoryStoreAboutUpsertKeepsID(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.AboutContent()
	require.ErrorIs(t, err, ErrNoRecord)

	first, err := s.UpsertAboutContent(models.AboutContentInput{
		Title: "About", Subtitle: "Me", Description: "d",
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	require.NotNil(t, first.Stats, "missing stats become an empty list")
	require.Empty(t, first.Stats)

	second, err := s.UpsertAboutContent(models.AboutContentInput{
		Title: "About (edited)", Subtitle: "Me", Description: "d",
		Stats: []string{"10+ projects"},
	})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID, "the singleton keeps its identifier")
	require.Equal(t, []string{"10+ projects"}, second.Stats)
}

func TestSeedDataset(t *testing.T) {
	s := NewMemoryStore()
	s.Seed()

	projects, err := s.Projects()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, "HOPE-PAWS", projects[0].Title)
	require.Equal(t, "true", projects[0].Featured)

	certificates, err := s.Certificates()
	require.NoError(t, err)
	require.Len(t, certificates, 10)
	require.Equal(t, "Practice Exam 1 for Azure AI Fundamentals (AI-900)", certificates[0].Title,
		"certificate listing is newest first")

	skills, err := s.Skills()
	require.NoError(t, err)
	require.Len(t, skills, 10)

	byCategory := collectionutils.GroupBy(skills, func(sk models.Skill) string { return sk.Category })
	require.Len(t, byCategory["technical"], 8)
	require.Len(t, byCategory["tools"], 1)
	require.Len(t, byCategory["soft"], 1)

	services, err := s.Services()
	require.NoError(t, err)
	require.Len(t, services, 6)

	links, err := s.SocialLinks()
	require.NoError(t, err)
	require.Len(t, links, 4)
	require.Equal(t, "LinkedIn", links[0].Platform)
	require.Equal(t, "Email", links[3].Platform)
}
