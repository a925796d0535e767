package main

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/crucial707/blog-api/internal/account"
	"github.com/crucial707/blog-api/internal/auth"
	"github.com/crucial707/blog-api/internal/blog"
	"github.com/crucial707/blog-api/internal/config"
	"github.com/crucial707/blog-api/internal/handlers"
	"github.com/crucial707/blog-api/internal/middleware"
	"github.com/crucial707/blog-api/internal/repo"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// newRouter wires every route against db. It is shared by main and the integration tests.
func newRouter(db *sql.DB, cfg config.Config) http.Handler {
	tokens := auth.NewTokenService(auth.TokenConfig{
		Secret: []byte(cfg.JWTSecret),
		TTL:    time.Duration(cfg.JWTExpireMinutes) * time.Minute,
	})
	hasher := auth.NewHasher(cfg.BcryptCost)
	resolver := auth.NewResolver(tokens, repo.NewUserRepo(db))
	requireUser := middleware.RequireUser(resolver)

	blogs := blog.NewService(db)
	authHandler := &handlers.AuthHandler{Accounts: account.NewService(db, hasher, tokens)}
	blogHandler := &handlers.BlogHandler{Blogs: blogs}
	commentHandler := &handlers.CommentHandler{Blogs: blogs}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Observe)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecurityHeaders(cfg.TLSCertFile != ""))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.MaxBytes(middleware.DefaultMaxBodyBytes))

	r.Get("/", handlers.Welcome)
	r.Get("/health", handlers.Health)
	r.Get("/ready", handlers.Ready(db))
	r.Handle("/metrics", promhttp.Handler())

	// ==========================
	// Users
	// ==========================
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Delete("/delete_account", requireUser(authHandler.DeleteAccount))

	// ==========================
	// Blogs
	// ==========================
	r.Get("/blogs", blogHandler.ListBlogs)
	r.Post("/blogs/new", requireUser(blogHandler.CreateBlog))
	r.Delete("/blogs/{id}", requireUser(blogHandler.DeleteBlog))

	// ==========================
	// Comments
	// ==========================
	r.Post("/comments", requireUser(commentHandler.CreateComment))
	r.Get("/comments/{blog_id}", commentHandler.ListComments)
	r.Delete("/comments/{id}", requireUser(commentHandler.DeleteComment))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlers.JSONError(w, "Not Found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handlers.JSONError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	return r
}
