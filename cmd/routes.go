package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

func (app *application) routes() http.Handler {
	router := chi.NewRouter()

	router.NotFound(app.notFoundResponse)

	router.Get("/health", app.healthcheck)

	// Session routes
	router.Post("/api/register", app.registerUser)
	router.Post("/api/login", app.loginUser)
	router.Post("/api/logout", app.logoutUser)
	router.Get("/api/user", app.currentUser)

	// Reads are public; every mutating route requires the admin session.
	router.Get("/api/projects", app.listProjects)
	router.Get("/api/projects/{id}", app.getProject)
	router.Post("/api/projects", app.requireAuthenticatedUser(app.createProject))
	router.Patch("/api/projects/{id}", app.requireAuthenticatedUser(app.updateProject))
	router.Delete("/api/projects/{id}", app.requireAuthenticatedUser(app.deleteProject))

	router.Get("/api/certificates", app.listCertificates)
	router.Get("/api/certificates/{id}", app.getCertificate)
	router.Post("/api/certificates", app.requireAuthenticatedUser(app.createCertificate))
	router.Patch("/api/certificates/{id}", app.requireAuthenticatedUser(app.updateCertificate))
	router.Delete("/api/certificates/{id}", app.requireAuthenticatedUser(app.deleteCertificate))

	router.Get("/api/skills", app.listSkills)
	router.Get("/api/skills/{id}", app.getSkill)
	router.Post("/api/skills", app.requireAuthenticatedUser(app.createSkill))
	router.Patch("/api/skills/{id}", app.requireAuthenticatedUser(app.updateSkill))
	router.Delete("/api/skills/{id}", app.requireAuthenticatedUser(app.deleteSkill))

	router.Get("/api/services", app.listServices)
	router.Get("/api/services/{id}", app.getService)
	router.Post("/api/services", app.requireAuthenticatedUser(app.createService))
	router.Patch("/api/services/{id}", app.requireAuthenticatedUser(app.updateService))
	router.Delete("/api/services/{id}", app.requireAuthenticatedUser(app.deleteService))

	router.Get("/api/social-links", app.listSocialLinks)
	router.Get("/api/social-links/{id}", app.getSocialLink)
	router.Post("/api/social-links", app.requireAuthenticatedUser(app.createSocialLink))
	router.Patch("/api/social-links/{id}", app.requireAuthenticatedUser(app.updateSocialLink))
	router.Delete("/api/social-links/{id}", app.requireAuthenticatedUser(app.deleteSocialLink))

	router.Get("/api/blog-posts", app.listBlogPosts)
	router.Get("/api/blog-posts/slug/{slug}", app.getBlogPostBySlug)
	router.Get("/api/blog-posts/{id}", app.getBlogPost)
	router.Post("/api/blog-posts", app.requireAuthenticatedUser(app.createBlogPost))
	router.Patch("/api/blog-posts/{id}", app.requireAuthenticatedUser(app.updateBlogPost))
	router.Delete("/api/blog-posts/{id}", app.requireAuthenticatedUser(app.deleteBlogPost))

	router.Get("/api/about-content", app.getAboutContent)
	router.Post("/api/about-content", app.requireAuthenticatedUser(app.upsertAboutContent))

	router.Post("/api/contact", app.submitContactMessage)
	router.Get("/api/contact-messages", app.requireAuthenticatedUser(app.listContactMessages))

	corsHandler := cors.New(cors.Options{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	return app.recoverPanic(app.authenticate(corsHandler.Handler(router)))
}
