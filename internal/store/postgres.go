package store

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/mdobak/go-xerrors"

	"github.com/kartiksharma/portfolio/internal/utils/databaseutils"
	"github.com/kartiksharma/portfolio/models"
)

// PostgresStore is the authoritative backend for production. Every
// operation is a single-row statement; the database's own transaction
// semantics serialise concurrent writes.
type PostgresStore struct {
	db       *sql.DB
	template *databaseutils.SQLTemplate
	log      *slog.Logger
}

var _ Store = (*PostgresStore)(nil)

func NewPostgresStore(db *sql.DB, log *slog.Logger) *PostgresStore {
	return &PostgresStore{
		db:       db,
		template: databaseutils.NewSQLTemplate(db, queryTimeout),
		log:      log,
	}
}

const queryTimeout = 3 * time.Second

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), `duplicate key value violates unique constraint`)
}

// deref adapts a row-scanning helper into the extractor shape that
// databaseutils.QueryForList expects.
func deref[T any](scan func(row interface{ Scan(...any) error }) (*T, error)) func(rows *sql.Rows) (T, error) {
	return func(rows *sql.Rows) (T, error) {
		item, err := scan(rows)
		if err != nil {
			var zero T
			return zero, err
		}
		return *item, nil
	}
}

func scanProject(row interface{ Scan(...any) error }) (*models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, pq.Array(&p.Technologies), &p.LiveURL, &p.GithubURL, &p.ImageURL, &p.Featured, &p.Order, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PostgresStore) Projects() ([]models.Project, error) {
	const selectSQL = `
		SELECT id, title, description, technologies, live_url, github_url, image_url, featured, "order", created_at
		FROM projects
		ORDER BY ("order")::int ASC, created_at ASC
	`

	projects, err := databaseutils.QueryForList(s.template, selectSQL, deref(scanProject))
	if err != nil {
		return nil, xerrors.New(err)
	}
	return projects, nil
}

func (s *PostgresStore) Project(id string) (*models.Project, error) {
	const selectSQL = `
		SELECT id, title, description, technologies, live_url, github_url, image_url, featured, "order", created_at
		FROM projects
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	p, err := scanProject(s.db.QueryRowContext(ctx, selectSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRecord
		}
		return nil, xerrors.New(err)
	}
	return p, nil
}

func (s *PostgresStore) CreateProject(in models.ProjectInput) (*models.Project, error) {
	const insertSQL = `
		INSERT INTO projects (id, title, description, technologies, live_url, github_url, image_url, featured, "order", created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, title, description, technologies, live_url, github_url, image_url, featured, "order", created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	row := s.db.QueryRowContext(ctx, insertSQL,
		uuid.NewString(), in.Title, in.Description, pq.Array(in.Technologies),
		optional(in.LiveURL), optional(in.GithubURL), optional(in.ImageURL),
		orDefault(in.Featured, "false"), orDefault(in.Order, "0"), time.Now())

	p, err := scanProject(row)
	if err != nil {
		return nil, xerrors.New(err)
	}
	return p, nil
}

func (s *PostgresStore) UpdateProject(id string, in models.ProjectInput) (*models.Project, error) {
	const updateSQL = `
		UPDATE projects
		SET title = $1, description = $2, technologies = $3, live_url = $4, github_url = $5, image_url = $6, featured = $7, "order" = $8
		WHERE id = $9
		RETURNING id, title, description, technologies, live_url, github_url, image_url, featured, "order", created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	row := s.db.QueryRowContext(ctx, updateSQL,
		in.Title, in.Description, pq.Array(in.Technologies),
		optional(in.LiveURL), optional(in.GithubURL), optional(in.ImageURL),
		orDefault(in.Featured, "false"), orDefault(in.Order, "0"), id)

	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRecord
		}
		return nil, xerrors.New(err)
	}
	return p, nil
}

func (s *PostgresStore) DeleteProject(id string) (bool, error) {
	return s.deleteByID(`DELETE FROM projects WHERE id = $1`, id)
}

// deleteByID reports whether a row was removed. A miss is (false, nil),
// never an error, so repeated deletes stay idempotent in effect.
func (s *PostgresStore) deleteByID(deleteSQL, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	result, err := s.db.ExecContext(ctx, deleteSQL, id)
	if err != nil {
		return false, xerrors.New(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, xerrors.New(err)
	}
	return affected > 0, nil
}

func scanCertificate(row interface{ Scan(...any) error }) (*models.Certificate, error) {
	var c models.Certificate
	err := row.Scan(&c.ID, &c.Title, &c.Issuer, &c.IssueDate, &c.CredentialID, &c.CredentialURL, pq.Array(&c.Skills), &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *PostgresStore) Certificates() ([]models.Certificate, error) {
	const selectSQL = `
		SELECT id, title, issuer, issue_date, credential_id, credential_url, skills, created_at
		FROM certificates
		ORDER BY created_at DESC
	`

	certificates, err := databaseutils.QueryForList(s.template, selectSQL, deref(scanCertificate))
	if err != nil {
		return nil, xerrors.New(err)
	}
	return certificates, nil
}

func (s *PostgresStore) Certificate(id string) (*models.Certificate, error) {
	const selectSQL = `
		SELECT id, title, issuer, issue_date, credential_id, credential_url, skills, created_at
		FROM certificates
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	c, err := scanCertificate(s.db.QueryRowContext(ctx, selectSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRecord
		}
		return nil, xerrors.New(err)
	}
	return c, nil
}

func (s *PostgresStore) CreateCertificate(in models.CertificateInput) (*models.Certificate, error) {
	const insertSQL = `
		INSERT INTO certificates (id, title, issuer, issue_date, credential_id, credential_url, skills, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, title, issuer, issue_date, credential_id, credential_url, skills, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	row := s.db.QueryRowContext(ctx, insertSQL,
		uuid.NewString(), in.Title, in.Issuer, in.IssueDate,
		optional(in.CredentialID), optional(in.CredentialURL), pq.Array(in.Skills), time.Now())

	c, err := scanCertificate(row)
	if err != nil {
		return nil, xerrors.New(err)
	}
	return c, nil
}

func (s *PostgresStore) UpdateCertificate(id string, in models.CertificateInput) (*models.Certificate, error) {
	const updateSQL = `
		UPDATE certificates
		SET title = $1, issuer = $2, issue_date = $3, credential_id = $4, credential_url = $5, skills = $6
		WHERE id = $7
		RETURNING id, title, issuer, issue_date, credential_id, credential_url, skills, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	row := s.db.QueryRowContext(ctx, updateSQL,
		in.Title, in.Issuer, in.IssueDate,
		optional(in.CredentialID), optional(in.CredentialURL), pq.Array(in.Skills), id)

	c, err := scanCertificate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRecord
		}
		return nil, xerrors.New(err)
	}
	return c, nil
}

func (s *PostgresStore) DeleteCertificate(id string) (bool, error) {
	return s.deleteByID(`DELETE FROM certificates WHERE id = $1`, id)
}

func scanSkill(row interface{ Scan(...any) error }) (*models.Skill, error) {
	var sk models.Skill
	err := row.Scan(&sk.ID, &sk.Name, &sk.Category, &sk.Level, &sk.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &sk, nil
}

func (s *PostgresStore) Skills() ([]models.Skill, error) {
	const selectSQL = `
		SELECT id, name, category, level, created_at
		FROM skills
		ORDER BY created_at ASC
	`

	skills, err := databaseutils.QueryForList(s.template, selectSQL, deref(scanSkill))
	if err != nil {
		return nil, xerrors.New(err)
	}
	return skills, nil
}

func (s *PostgresStore) Skill(id string) (*models.Skill, error) {
	const selectSQL = `
		SELECT id, name, category, level, created_at
		FROM skills
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	sk, err := scanSkill(s.db.QueryRowContext(ctx, selectSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRecord
		}
		return nil, xerrors.New(err)
	}
	return sk, nil
}

func (s *PostgresStore) CreateSkill(in models.SkillInput) (*models.Skill, error) {
	const insertSQL = `
		INSERT INTO skills (id, name, category, level, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, category, level, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	sk, err := scanSkill(s.db.QueryRowContext(ctx, insertSQL, uuid.NewString(), in.Name, in.Category, in.Level, time.Now()))
	if err != nil {
		return nil, xerrors.New(err)
	}
	return sk, nil
}

func (s *PostgresStore) UpdateSkill(id string, in models.SkillInput) (*models.Skill, error) {
	const updateSQL = `
		UPDATE skills
		SET name = $1, category = $2, level = $3
		WHERE id = $4
		RETURNING id, name, category, level, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	sk, err := scanSkill(s.db.QueryRowContext(ctx, updateSQL, in.Name, in.Category, in.Level, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRecord
		}
		return nil, xerrors.New(err)
	}
	return sk, nil
}

func (s *PostgresStore) DeleteSkill(id string) (bool, error) {
	return s.deleteByID(`DELETE FROM skills WHERE id = $1`, id)
}

func scanService(row interface{ Scan(...any) error }) (*models.Service, error) {
	var sv models.Service
	err := row.Scan(&sv.ID, &sv.Title, &sv.Description, &sv.Icon, &sv.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &sv, nil
}

func (s *PostgresStore) Services() ([]models.Service, error) {
	const selectSQL = `
		SELECT id, title, description, icon, created_at
		FROM services
		ORDER BY created_at ASC
	`

	services, err := databaseutils.QueryForList(s.template, selectSQL, deref(scanService))
	if err != nil {
		return nil, xerrors.New(err)
	}
	return services, nil
}

func (s *PostgresStore) Service(id string) (*models.Service, error) {
	const selectSQL = `
		SELECT id, title, description, icon, created_at
		FROM services
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	sv, err := scanService(s.db.QueryRowContext(ctx, selectSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRecord
		}
		return nil, xerrors.New(err)
	}
	return sv, nil
}

func (s *PostgresStore) CreateService(in models.ServiceInput) (*models.Service, error) {
	const insertSQL = `
		INSERT INTO services (id, title, description, icon, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, description, icon, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	sv, err := scanService(s.db.QueryRowContext(ctx, insertSQL, uuid.NewString(), in.Title, in.Description, in.Icon, time.Now()))
	if err != nil {
		return nil, xerrors.New(err)
	}
	return sv, nil
}

func (s *PostgresStore) UpdateService(id string, in models.ServiceInput) (*models.Service, error) {
	const updateSQL = `
		UPDATE services
		SET title = $1, description = $2, icon = $3
		WHERE id = $4
		RETURNING id, title, description, icon, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	sv, err := scanService(s.db.QueryRowContext(ctx, updateSQL, in.Title, in.Description, in.Icon, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRecord
		}
		return nil, xerrors.New(err)
	}
	return sv, nil
}

func (s *PostgresStore) DeleteService(id string) (bool, error) {
	return s.deleteByID(`DELETE FROM services WHERE id = $1`, id)
}

func scanSocialLink(row interface{ Scan(...any) error }) (*models.SocialLink, error) {
	var l models.SocialLink
	err := row.Scan(&l.ID, &l.Platform, &l.URL, &l.Icon, &l.Handle, &l.Order, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *PostgresStore) SocialLinks() ([]models.SocialLink, error) {
	const selectSQL = `
		SELECT id, platform, url, icon, handle, "order", created_at
		FROM social_links
		ORDER BY ("order")::int ASC, created_at ASC
	`

	links, err := databaseutils.QueryForList(s.template, selectSQL, deref(scanSocialLink))
	if err != nil {
		return nil, xerrors.New(err)
	}
	return links, nil
}

func (s *PostgresStore) SocialLink(id string) (*models.SocialLink, error) {
	const selectSQL = `
		SELECT id, platform, url, icon, handle, "order", created_at
		FROM social_links
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	l, err := scanSocialLink(s.db.QueryRowContext(ctx, selectSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRecord
		}
		return nil, xerrors.New(err)
	}
	return l, nil
}

func (s *PostgresStore) CreateSocialLink(in models.SocialLinkInput) (*models.SocialLink, error) {
	const insertSQL = `
		INSERT INTO social_links (id, platform, url, icon, handle, "order", created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, platform, url, icon, handle, "order", created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	row := s.db.QueryRowContext(ctx, insertSQL,
		uuid.NewString(), in.Platform, in.URL, in.Icon,
		optional(in.Handle), orDefault(in.Order, "0"), time.Now())

	l, err := scanSocialLink(row)
	if err != nil {
		return nil, xerrors.New(err)
	}
	return l, nil
}

func (s *PostgresStore) UpdateSocialLink(id string, in models.SocialLinkInput) (*models.SocialLink, error) {
	const updateSQL = `
		UPDATE social_links
		SET platform = $1, url = $2, icon = $3, handle = $4, "order" = $5
		WHERE id = $6
		RETURNING id, platform, url, icon, handle, "order", created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	row := s.db.QueryRowContext(ctx, updateSQL,
		in.Platform, in.URL, in.Icon, optional(in.Handle), orDefault(in.Order, "0"), id)

	l, err := scanSocialLink(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRecord
		}
		return nil, xerrors.New(err)
	}
	return l, nil
}

func (s *PostgresStore) DeleteSocialLink(id string) (bool, error) {
	return s.deleteByID(`DELETE FROM social_links WHERE id = $1`, id)
}

func scanBlogPost(row interface{ Scan(...any) error }) (*models.BlogPost, error) {
	var p models.BlogPost
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.CoverImage, pq.Array(&p.Tags), &p.Published, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PostgresStore) BlogPosts(publishedOnly bool) ([]models.BlogPost, error) {
	selectSQL := `
		SELECT id, title, slug, excerpt, content, cover_image, tags, published, published_at, created_at, updated_at
		FROM blog_posts
		ORDER BY updated_at DESC
	`
	if publishedOnly {
		selectSQL = `
			SELECT id, title, slug, excerpt, content, cover_image, tags, published, published_at, created_at, updated_at
			FROM blog_posts
			WHERE published = 'true'
			ORDER BY published_at DESC NULLS LAST
		`
	}

	posts, err := databaseutils.QueryForList(s.template, selectSQL, deref(scanBlogPost))
	if err != nil {
		return nil, xerrors.New(err)
	}
	return posts, nil
}

func (s *PostgresStore) BlogPost(id string) (*models.BlogPost, error) {
	const selectSQL = `
		SELECT id, title, slug, excerpt, content, cover_image, tags, published, published_at, created_at, updated_at
		FROM blog_posts
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	p, err := scanBlogPost(s.db.QueryRowContext(ctx, selectSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRecord
		}
		return nil, xerrors.New(err)
	}
	return p, nil
}

func (s *PostgresStore) BlogPostBySlug(slug string) (*models.BlogPost, error) {
	const selectSQL = `
		SELECT id, title, slug, excerpt, content, cover_image, tags, published, published_at, created_at, updated_at
		FROM blog_posts
		WHERE slug = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	p, err := scanBlogPost(s.db.QueryRowContext(ctx, selectSQL, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRecord
		}
		return nil, xerrors.New(err)
	}
	return p, nil
}

func (s *PostgresStore) CreateBlogPost(in models.BlogPostInput) (*models.BlogPost, error) {
	const insertSQL = `
		INSERT INTO blog_posts (id, title, slug, excerpt, content, cover_image, tags, published, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, title, slug, excerpt, content, cover_image, tags, published, published_at, created_at, updated_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	now := time.Now()
	row := s.db.QueryRowContext(ctx, insertSQL,
		uuid.NewString(), in.Title, in.Slug, in.Excerpt, in.Content,
		optional(in.CoverImage), pq.Array(in.Tags), orDefault(in.Published, "false"),
		in.PublishedAt, now, now)

	p, err := scanBlogPost(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, xerrors.New(err)
	}
	return p, nil
}

func (s *PostgresStore) UpdateBlogPost(id string, in models.BlogPostInput) (*models.BlogPost, error) {
	const updateSQL = `
		UPDATE blog_posts
		SET title = $1, slug = $2, excerpt = $3, content = $4, cover_image = $5, tags = $6, published = $7, published_at = $8, updated_at = $9
		WHERE id = $10
		RETURNING id, title, slug, excerpt, content, cover_image, tags, published, published_at, created_at, updated_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	row := s.db.QueryRowContext(ctx, updateSQL,
		in.Title, in.Slug, in.Excerpt, in.Content,
		optional(in.CoverImage), pq.Array(in.Tags), orDefault(in.Published, "false"),
		in.PublishedAt, time.Now(), id)

	p, err := scanBlogPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRecord
		}
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, xerrors.New(err)
	}
	return p, nil
}

func (s *PostgresStore) DeleteBlogPost(id string) (bool, error) {
	return s.deleteByID(`DELETE FROM blog_posts WHERE id = $1`, id)
}

func scanContactMessage(row interface{ Scan(...any) error }) (*models.ContactMessage, error) {
	var m models.ContactMessage
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *PostgresStore) CreateContactMessage(in models.ContactMessageInput) (*models.ContactMessage, error) {
	const insertSQL = `
		INSERT INTO contact_messages (id, name, email, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, message, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	m, err := scanContactMessage(s.db.QueryRowContext(ctx, insertSQL, uuid.NewString(), in.Name, in.Email, in.Message, time.Now()))
	if err != nil {
		return nil, xerrors.New(err)
	}
	return m, nil
}

func (s *PostgresStore) ContactMessages() ([]models.ContactMessage, error) {
	const selectSQL = `
		SELECT id, name, email, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`

	messages, err := databaseutils.QueryForList(s.template, selectSQL, deref(scanContactMessage))
	if err != nil {
		return nil, xerrors.New(err)
	}
	return messages, nil
}

func (s *PostgresStore) User(id int64) (*models.User, error) {
	const selectSQL = `
		SELECT id, username, password, created_at
		FROM users
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var u models.User
	err := s.db.QueryRowContext(ctx, selectSQL, id).Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRecord
		}
		return nil, xerrors.New(err)
	}
	return &u, nil
}

func (s *PostgresStore) UserByUsername(username string) (*models.User, error) {
	const selectSQL = `
		SELECT id, username, password, created_at
		FROM users
		WHERE username = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var u models.User
	err := s.db.QueryRowContext(ctx, selectSQL, username).Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRecord
		}
		return nil, xerrors.New(err)
	}
	return &u, nil
}

func (s *PostgresStore) CreateUser(username string, passwordHash []byte) (*models.User, error) {
	const insertSQL = `
		INSERT INTO users (username, password, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, username, password, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var u models.User
	err := s.db.QueryRowContext(ctx, insertSQL, username, passwordHash, time.Now()).
		Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, xerrors.New(err)
	}
	return &u, nil
}

func scanAboutContent(row interface{ Scan(...any) error }) (*models.AboutContent, error) {
	var a models.AboutContent
	err := row.Scan(&a.ID, &a.Title, &a.Subtitle, &a.Description, &a.ProfileImage, pq.Array(&a.Stats), &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *PostgresStore) AboutContent() (*models.AboutContent, error) {
	const selectSQL = `
		SELECT id, title, subtitle, description, profile_image, stats, updated_at
		FROM about_content
		LIMIT 1
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	a, err := scanAboutContent(s.db.QueryRowContext(ctx, selectSQL))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRecord
		}
		return nil, xerrors.New(err)
	}
	return a, nil
}

// UpsertAboutContent updates the singleton row, inserting it on first
// write. The row keeps its original identifier across updates.
func (s *PostgresStore) UpsertAboutContent(in models.AboutContentInput) (*models.AboutContent, error) {
	const updateSQL = `
		UPDATE about_content
		SET title = $1, subtitle = $2, description = $3, profile_image = $4, stats = $5, updated_at = $6
		RETURNING id, title, subtitle, description, profile_image, stats, updated_at
	`
	const insertSQL = `
		INSERT INTO about_content (id, title, subtitle, description, profile_image, stats, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, subtitle, description, profile_image, stats, updated_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	stats := in.Stats
	if stats == nil {
		stats = []string{}
	}

	row := s.db.QueryRowContext(ctx, updateSQL,
		in.Title, in.Subtitle, in.Description, optional(in.ProfileImage), pq.Array(stats), time.Now())
	a, err := scanAboutContent(row)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, xerrors.New(err)
	}

	row = s.db.QueryRowContext(ctx, insertSQL,
		uuid.NewString(), in.Title, in.Subtitle, in.Description, optional(in.ProfileImage), pq.Array(stats), time.Now())
	a, err = scanAboutContent(row)
	if err != nil {
		return nil, xerrors.New(err)
	}
	return a, nil
}
