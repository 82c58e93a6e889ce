// Package store provides the persistence layer behind the portfolio API.
// Two interchangeable implementations exist: a Postgres-backed store used
// in production, and a seeded in-memory store for local development. The
// backend is chosen once at startup by Open.
package store

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/mdobak/go-xerrors"

	"github.com/kartiksharma/portfolio/internal/config"
	"github.com/kartiksharma/portfolio/models"
)

var (
	// ErrNoRecord marks a lookup miss. It is a normal outcome, not a
	// fault; handlers translate it to 404.
	ErrNoRecord = xerrors.Message("no matching record found")

	ErrDuplicateSlug     = xerrors.Message("duplicate slug")
	ErrDuplicateUsername = xerrors.Message("duplicate username")
)

// Store is the uniform CRUD contract over the nine entity types. Lookups
// return ErrNoRecord when the id (or slug, or username) does not exist;
// deletes report a miss as (false, nil). Any other error is a backend
// fault that the caller maps to a 500.
type Store interface {
	Projects() ([]models.Project, error)
	Project(id string) (*models.Project, error)
	CreateProject(in models.ProjectInput) (*models.Project, error)
	UpdateProject(id string, in models.ProjectInput) (*models.Project, error)
	DeleteProject(id string) (bool, error)

	Certificates() ([]models.Certificate, error)
	Certificate(id string) (*models.Certificate, error)
	CreateCertificate(in models.CertificateInput) (*models.Certificate, error)
	UpdateCertificate(id string, in models.CertificateInput) (*models.Certificate, error)
	DeleteCertificate(id string) (bool, error)

	Skills() ([]models.Skill, error)
	Skill(id string) (*models.Skill, error)
	CreateSkill(in models.SkillInput) (*models.Skill, error)
	UpdateSkill(id string, in models.SkillInput) (*models.Skill, error)
	DeleteSkill(id string) (bool, error)

	Services() ([]models.Service, error)
	Service(id string) (*models.Service, error)
	CreateService(in models.ServiceInput) (*models.Service, error)
	UpdateService(id string, in models.ServiceInput) (*models.Service, error)
	DeleteService(id string) (bool, error)

	SocialLinks() ([]models.SocialLink, error)
	SocialLink(id string) (*models.SocialLink, error)
	CreateSocialLink(in models.SocialLinkInput) (*models.SocialLink, error)
	UpdateSocialLink(id string, in models.SocialLinkInput) (*models.SocialLink, error)
	DeleteSocialLink(id string) (bool, error)

	BlogPosts(publishedOnly bool) ([]models.BlogPost, error)
	BlogPost(id string) (*models.BlogPost, error)
	BlogPostBySlug(slug string) (*models.BlogPost, error)
	CreateBlogPost(in models.BlogPostInput) (*models.BlogPost, error)
	UpdateBlogPost(id string, in models.BlogPostInput) (*models.BlogPost, error)
	DeleteBlogPost(id string) (bool, error)

	CreateContactMessage(in models.ContactMessageInput) (*models.ContactMessage, error)
	ContactMessages() ([]models.ContactMessage, error)

	User(id int64) (*models.User, error)
	UserByUsername(username string) (*models.User, error)
	CreateUser(username string, passwordHash []byte) (*models.User, error)

	AboutContent() (*models.AboutContent, error)
	UpsertAboutContent(in models.AboutContentInput) (*models.AboutContent, error)
}

// Open resolves the storage backend once for the process lifetime. A
// configured DATABASE_URL selects Postgres (pinged and migrated before
// use); otherwise the in-memory store is returned pre-seeded with the
// example dataset so the public site is non-empty.
func Open(cfg config.Config, log *slog.Logger) (Store, error) {
	if cfg.DatabaseURL == "" {
		log.Info("No DATABASE_URL configured, using in-memory storage")
		mem := NewMemoryStore()
		mem.Seed()
		return mem, nil
	}

	db, err := openDBConnection(cfg.DatabaseURL)
	if err != nil {
		return nil, xerrors.New(err)
	}

	if err := migrate(db); err != nil {
		return nil, xerrors.New(err)
	}

	log.Info("Database connection established successfully")
	return NewPostgresStore(db, log), nil
}

func openDBConnection(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxIdleConns(10)
	db.SetConnMaxIdleTime(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return db, nil
}
