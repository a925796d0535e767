package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"
)

// WelcomeMessage is returned by GET /.
const WelcomeMessage = "Welcome to the Blog API! Please use the available routes for user and blog operations."

// Welcome greets the caller.
func Welcome(w http.ResponseWriter, r *http.Request) {
	JSON(w, map[string]string{"message": WelcomeMessage})
}

// Health is the liveness probe; it does not touch the database.
func Health(w http.ResponseWriter, r *http.Request) {
	JSON(w, map[string]string{"status": "ok"})
}

// Ready pings the database and answers 503 when it is unreachable.
func Ready(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			JSONError(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		JSON(w, map[string]string{"status": "ready"})
	}
}
