package models

import "time"

// Project is a portfolio project shown on the public site. Featured and
// Order are kept as string literals ("true"/"false", "0", "1", ...) for
// wire compatibility with the stored data; sorting parses Order as an int.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	LiveURL      *string   `json:"liveUrl"`
	GithubURL    *string   `json:"githubUrl"`
	ImageURL     *string   `json:"imageUrl"`
	Featured     string    `json:"featured"`
	Order        string    `json:"order"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ProjectInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	LiveURL      *string  `json:"liveUrl"`
	GithubURL    *string  `json:"githubUrl"`
	ImageURL     *string  `json:"imageUrl"`
	Featured     string   `json:"featured"`
	Order        string   `json:"order"`
}

type Certificate struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Issuer        string    `json:"issuer"`
	IssueDate     string    `json:"issueDate"`
	CredentialID  *string   `json:"credentialId"`
	CredentialURL *string   `json:"credentialUrl"`
	Skills        []string  `json:"skills"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CertificateInput struct {
	Title         string   `json:"title"`
	Issuer        string   `json:"issuer"`
	IssueDate     string   `json:"issueDate"`
	CredentialID  *string  `json:"credentialId"`
	CredentialURL *string  `json:"credentialUrl"`
	Skills        []string `json:"skills"`
}

// Skill categories and levels accepted by the API.
var (
	SkillCategories = []string{"technical", "tools", "soft"}
	SkillLevels     = []string{"beginner", "intermediate", "advanced", "expert"}
)

type Skill struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Level     string    `json:"level"`
	CreatedAt time.Time `json:"createdAt"`
}

type SkillInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    string `json:"level"`
}

type Service struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ServiceInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type SocialLink struct {
	ID        string    `json:"id"`
	Platform  string    `json:"platform"`
	URL       string    `json:"url"`
	Icon      string    `json:"icon"`
	Handle    *string   `json:"handle"`
	Order     string    `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}

type SocialLinkInput struct {
	Platform string  `json:"platform"`
	URL      string  `json:"url"`
	Icon     string  `json:"icon"`
	Handle   *string `json:"handle"`
	Order    string  `json:"order"`
}

// BlogPost.Slug is unique across all posts. UpdatedAt is bumped on every
// write; Published mirrors the Featured convention ("true"/"false").
type BlogPost struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	CoverImage  *string    `json:"coverImage"`
	Tags        []string   `json:"tags"`
	Published   string     `json:"published"`
	PublishedAt *time.Time `json:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type BlogPostInput struct {
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	CoverImage  *string    `json:"coverImage"`
	Tags        []string   `json:"tags"`
	Published   string     `json:"published"`
	PublishedAt *time.Time `json:"publishedAt"`
}

// User is the single administrative identity. The password hash never
// leaves the server.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  []byte    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactMessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// AboutContent is a singleton: at most one row exists and writes upsert.
type AboutContent struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	Description  string    `json:"description"`
	ProfileImage *string   `json:"profileImage"`
	Stats        []string  `json:"stats"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type AboutContentInput struct {
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle"`
	Description  string   `json:"description"`
	ProfileImage *string  `json:"profileImage"`
	Stats        []string `json:"stats"`
}
