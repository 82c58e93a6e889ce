package store

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kartiksharma/portfolio/internal/utils/collectionutils"
	"github.com/kartiksharma/portfolio/models"
)

// MemoryStore keeps every entity in process memory. It backs local and
// offline development and is lost on restart. A single mutex guards all
// maps: unlike the Postgres store there is no engine underneath to
// serialise concurrent writes, and Go handlers run on parallel goroutines.
type MemoryStore struct {
	mu sync.Mutex

	projects        map[string]models.Project
	certificates    map[string]models.Certificate
	skills          map[string]models.Skill
	services        map[string]models.Service
	socialLinks     map[string]models.SocialLink
	blogPosts       map[string]models.BlogPost
	contactMessages map[string]models.ContactMessage
	users           map[int64]models.User
	about           *models.AboutContent

	userIDCounter int64

	// seq breaks ordering ties between records created within the same
	// clock tick.
	seq     map[string]int64
	nextSeq int64
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		projects:        make(map[string]models.Project),
		certificates:    make(map[string]models.Certificate),
		skills:          make(map[string]models.Skill),
		services:        make(map[string]models.Service),
		socialLinks:     make(map[string]models.SocialLink),
		blogPosts:       make(map[string]models.BlogPost),
		contactMessages: make(map[string]models.ContactMessage),
		users:           make(map[int64]models.User),
		userIDCounter:   1,
		seq:             make(map[string]int64),
	}
}

func (s *MemoryStore) take(id string) int64 {
	s.nextSeq++
	s.seq[id] = s.nextSeq
	return s.nextSeq
}

func parseOrder(order string) int {
	n, err := strconv.Atoi(order)
	if err != nil {
		return 0
	}
	return n
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// optional collapses an absent or empty optional field to nil so both
// backends persist the same null.
func optional(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}

// Projects returns every project sorted by parsed display order, ascending.
func (s *MemoryStore) Projects() ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := collectionutils.Values(s.projects)
	sort.Slice(projects, func(i, j int) bool {
		oi, oj := parseOrder(projects[i].Order), parseOrder(projects[j].Order)
		if oi != oj {
			return oi < oj
		}
		return s.seq[projects[i].ID] < s.seq[projects[j].ID]
	})

	return projects, nil
}

func (s *MemoryStore) Project(id string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[id]
	if !ok {
		return nil, ErrNoRecord
	}
	return &project, nil
}

func (s *MemoryStore) CreateProject(in models.ProjectInput) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createProject(in), nil
}

func (s *MemoryStore) createProject(in models.ProjectInput) *models.Project {
	project := models.Project{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		Technologies: in.Technologies,
		LiveURL:      optional(in.LiveURL),
		GithubURL:    optional(in.GithubURL),
		ImageURL:     optional(in.ImageURL),
		Featured:     orDefault(in.Featured, "false"),
		Order:        orDefault(in.Order, "0"),
		CreatedAt:    time.Now(),
	}
	s.projects[project.ID] = project
	s.take(project.ID)
	return &project
}

func (s *MemoryStore) UpdateProject(id string, in models.ProjectInput) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.projects[id]
	if !ok {
		return nil, ErrNoRecord
	}

	updated := models.Project{
		ID:           id,
		Title:        in.Title,
		Description:  in.Description,
		Technologies: in.Technologies,
		LiveURL:      optional(in.LiveURL),
		GithubURL:    optional(in.GithubURL),
		ImageURL:     optional(in.ImageURL),
		Featured:     orDefault(in.Featured, "false"),
		Order:        orDefault(in.Order, "0"),
		CreatedAt:    existing.CreatedAt,
	}
	s.projects[id] = updated
	return &updated, nil
}

func (s *MemoryStore) DeleteProject(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return false, nil
	}
	delete(s.projects, id)
	delete(s.seq, id)
	return true, nil
}

// Certificates returns every certificate, newest first.
func (s *MemoryStore) Certificates() ([]models.Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	certificates := collectionutils.Values(s.certificates)
	sort.Slice(certificates, func(i, j int) bool {
		ti, tj := certificates[i].CreatedAt, certificates[j].CreatedAt
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return s.seq[certificates[i].ID] > s.seq[certificates[j].ID]
	})

	return certificates, nil
}

func (s *MemoryStore) Certificate(id string) (*models.Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	certificate, ok := s.certificates[id]
	if !ok {
		return nil, ErrNoRecord
	}
	return &certificate, nil
}

func (s *MemoryStore) CreateCertificate(in models.CertificateInput) (*models.Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createCertificate(in, time.Now()), nil
}

func (s *MemoryStore) createCertificate(in models.CertificateInput, createdAt time.Time) *models.Certificate {
	certificate := models.Certificate{
		ID:            uuid.NewString(),
		Title:         in.Title,
		Issuer:        in.Issuer,
		IssueDate:     in.IssueDate,
		CredentialID:  optional(in.CredentialID),
		CredentialURL: optional(in.CredentialURL),
		Skills:        in.Skills,
		CreatedAt:     createdAt,
	}
	s.certificates[certificate.ID] = certificate
	s.take(certificate.ID)
	return &certificate
}

func (s *MemoryStore) UpdateCertificate(id string, in models.CertificateInput) (*models.Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.certificates[id]
	if !ok {
		return nil, ErrNoRecord
	}

	updated := models.Certificate{
		ID:            id,
		Title:         in.Title,
		Issuer:        in.Issuer,
		IssueDate:     in.IssueDate,
		CredentialID:  optional(in.CredentialID),
		CredentialURL: optional(in.CredentialURL),
		Skills:        in.Skills,
		CreatedAt:     existing.CreatedAt,
	}
	s.certificates[id] = updated
	return &updated, nil
}

func (s *MemoryStore) DeleteCertificate(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.certificates[id]; !ok {
		return false, nil
	}
	delete(s.certificates, id)
	delete(s.seq, id)
	return true, nil
}

// Skills returns every skill in insertion order.
func (s *MemoryStore) Skills() ([]models.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	skills := collectionutils.Values(s.skills)
	sort.Slice(skills, func(i, j int) bool {
		return s.seq[skills[i].ID] < s.seq[skills[j].ID]
	})

	return skills, nil
}

func (s *MemoryStore) Skill(id string) (*models.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	skill, ok := s.skills[id]
	if !ok {
		return nil, ErrNoRecord
	}
	return &skill, nil
}

func (s *MemoryStore) CreateSkill(in models.SkillInput) (*models.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createSkill(in), nil
}

func (s *MemoryStore) createSkill(in models.SkillInput) *models.Skill {
	skill := models.Skill{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Category:  in.Category,
		Level:     in.Level,
		CreatedAt: time.Now(),
	}
	s.skills[skill.ID] = skill
	s.take(skill.ID)
	return &skill
}

func (s *MemoryStore) UpdateSkill(id string, in models.SkillInput) (*models.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.skills[id]
	if !ok {
		return nil, ErrNoRecord
	}

	updated := models.Skill{
		ID:        id,
		Name:      in.Name,
		Category:  in.Category,
		Level:     in.Level,
		CreatedAt: existing.CreatedAt,
	}
	s.skills[id] = updated
	return &updated, nil
}

func (s *MemoryStore) DeleteSkill(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.skills[id]; !ok {
		return false, nil
	}
	delete(s.skills, id)
	delete(s.seq, id)
	return true, nil
}

// Services returns every service in insertion order.
func (s *MemoryStore) Services() ([]models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	services := collectionutils.Values(s.services)
	sort.Slice(services, func(i, j int) bool {
		return s.seq[services[i].ID] < s.seq[services[j].ID]
	})

	return services, nil
}

func (s *MemoryStore) Service(id string) (*models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	service, ok := s.services[id]
	if !ok {
		return nil, ErrNoRecord
	}
	return &service, nil
}

func (s *MemoryStore) CreateService(in models.ServiceInput) (*models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createService(in), nil
}

func (s *MemoryStore) createService(in models.ServiceInput) *models.Service {
	service := models.Service{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		CreatedAt:   time.Now(),
	}
	s.services[service.ID] = service
	s.take(service.ID)
	return &service
}

func (s *MemoryStore) UpdateService(id string, in models.ServiceInput) (*models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.services[id]
	if !ok {
		return nil, ErrNoRecord
	}

	updated := models.Service{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		CreatedAt:   existing.CreatedAt,
	}
	s.services[id] = updated
	return &updated, nil
}

func (s *MemoryStore) DeleteService(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.services[id]; !ok {
		return false, nil
	}
	delete(s.services, id)
	delete(s.seq, id)
	return true, nil
}

// SocialLinks returns every link sorted by parsed display order, ascending.
func (s *MemoryStore) SocialLinks() ([]models.SocialLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	links := collectionutils.Values(s.socialLinks)
	sort.Slice(links, func(i, j int) bool {
		oi, oj := parseOrder(links[i].Order), parseOrder(links[j].Order)
		if oi != oj {
			return oi < oj
		}
		return s.seq[links[i].ID] < s.seq[links[j].ID]
	})

	return links, nil
}

func (s *MemoryStore) SocialLink(id string) (*models.SocialLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	link, ok := s.socialLinks[id]
	if !ok {
		return nil, ErrNoRecord
	}
	return &link, nil
}

func (s *MemoryStore) CreateSocialLink(in models.SocialLinkInput) (*models.SocialLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createSocialLink(in), nil
}

func (s *MemoryStore) createSocialLink(in models.SocialLinkInput) *models.SocialLink {
	link := models.SocialLink{
		ID:        uuid.NewString(),
		Platform:  in.Platform,
		URL:       in.URL,
		Icon:      in.Icon,
		Handle:    optional(in.Handle),
		Order:     orDefault(in.Order, "0"),
		CreatedAt: time.Now(),
	}
	s.socialLinks[link.ID] = link
	s.take(link.ID)
	return &link
}

func (s *MemoryStore) UpdateSocialLink(id string, in models.SocialLinkInput) (*models.SocialLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.socialLinks[id]
	if !ok {
		return nil, ErrNoRecord
	}

	updated := models.SocialLink{
		ID:        id,
		Platform:  in.Platform,
		URL:       in.URL,
		Icon:      in.Icon,
		Handle:    optional(in.Handle),
		Order:     orDefault(in.Order, "0"),
		CreatedAt: existing.CreatedAt,
	}
	s.socialLinks[id] = updated
	return &updated, nil
}

func (s *MemoryStore) DeleteSocialLink(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.socialLinks[id]; !ok {
		return false, nil
	}
	delete(s.socialLinks, id)
	delete(s.seq, id)
	return true, nil
}

// BlogPosts returns posts newest-change first. With publishedOnly set the
// result is restricted to published posts and ordered by publish date.
func (s *MemoryStore) BlogPosts(publishedOnly bool) ([]models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := collectionutils.Values(s.blogPosts)

	if publishedOnly {
		posts = collectionutils.Filter(posts, func(p models.BlogPost) bool {
			return p.Published == "true"
		})
		sort.Slice(posts, func(i, j int) bool {
			return publishedAtOrZero(posts[i]).After(publishedAtOrZero(posts[j]))
		})
		return posts, nil
	}

	sort.Slice(posts, func(i, j int) bool {
		ti, tj := posts[i].UpdatedAt, posts[j].UpdatedAt
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return s.seq[posts[i].ID] > s.seq[posts[j].ID]
	})
	return posts, nil
}

func publishedAtOrZero(p models.BlogPost) time.Time {
	if p.PublishedAt == nil {
		return time.Time{}
	}
	return *p.PublishedAt
}

func (s *MemoryStore) BlogPost(id string) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.blogPosts[id]
	if !ok {
		return nil, ErrNoRecord
	}
	return &post, nil
}

func (s *MemoryStore) BlogPostBySlug(slug string) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, post := range s.blogPosts {
		if post.Slug == slug {
			return &post, nil
		}
	}
	return nil, ErrNoRecord
}

func (s *MemoryStore) CreateBlogPost(in models.BlogPostInput) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, post := range s.blogPosts {
		if post.Slug == in.Slug {
			return nil, ErrDuplicateSlug
		}
	}

	now := time.Now()
	post := models.BlogPost{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Slug:        in.Slug,
		Excerpt:     in.Excerpt,
		Content:     in.Content,
		CoverImage:  optional(in.CoverImage),
		Tags:        in.Tags,
		Published:   orDefault(in.Published, "false"),
		PublishedAt: in.PublishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.blogPosts[post.ID] = post
	s.take(post.ID)
	return &post, nil
}

func (s *MemoryStore) UpdateBlogPost(id string, in models.BlogPostInput) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.blogPosts[id]
	if !ok {
		return nil, ErrNoRecord
	}

	for _, post := range s.blogPosts {
		if post.Slug == in.Slug && post.ID != id {
			return nil, ErrDuplicateSlug
		}
	}

	updated := models.BlogPost{
		ID:          id,
		Title:       in.Title,
		Slug:        in.Slug,
		Excerpt:     in.Excerpt,
		Content:     in.Content,
		CoverImage:  optional(in.CoverImage),
		Tags:        in.Tags,
		Published:   orDefault(in.Published, "false"),
		PublishedAt: in.PublishedAt,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now(),
	}
	s.blogPosts[id] = updated
	return &updated, nil
}

func (s *MemoryStore) DeleteBlogPost(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blogPosts[id]; !ok {
		return false, nil
	}
	delete(s.blogPosts, id)
	delete(s.seq, id)
	return true, nil
}

func (s *MemoryStore) CreateContactMessage(in models.ContactMessageInput) (*models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	message := models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	s.contactMessages[message.ID] = message
	s.take(message.ID)
	return &message, nil
}

// ContactMessages returns every stored message, newest first.
func (s *MemoryStore) ContactMessages() ([]models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages := collectionutils.Values(s.contactMessages)
	sort.Slice(messages, func(i, j int) bool {
		ti, tj := messages[i].CreatedAt, messages[j].CreatedAt
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return s.seq[messages[i].ID] > s.seq[messages[j].ID]
	})

	return messages, nil
}

func (s *MemoryStore) User(id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNoRecord
	}
	return &user, nil
}

func (s *MemoryStore) UserByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, ErrNoRecord
}

func (s *MemoryStore) CreateUser(username string, passwordHash []byte) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			return nil, ErrDuplicateUsername
		}
	}

	user := models.User{
		ID:        s.userIDCounter,
		Username:  username,
		Password:  passwordHash,
		CreatedAt: time.Now(),
	}
	s.userIDCounter++
	s.users[user.ID] = user
	return &user, nil
}

func (s *MemoryStore) AboutContent() (*models.AboutContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.about == nil {
		return nil, ErrNoRecord
	}
	about := *s.about
	return &about, nil
}

// UpsertAboutContent updates the singleton row if present, else inserts it.
// The identifier survives across upserts.
func (s *MemoryStore) UpsertAboutContent(in models.AboutContentInput) (*models.AboutContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	if s.about != nil {
		id = s.about.ID
	}

	stats := in.Stats
	if stats == nil {
		stats = []string{}
	}

	about := models.AboutContent{
		ID:           id,
		Title:        in.Title,
		Subtitle:     in.Subtitle,
		Description:  in.Description,
		ProfileImage: optional(in.ProfileImage),
		Stats:        stats,
		UpdatedAt:    time.Now(),
	}
	s.about = &about

	result := about
	return &result, nil
}
