package auth

import "github.com/crucial707/blog-api/internal/models"

// CanDelete reports whether actor may delete a row owned by ownerID.
// Rows without an owner can be deleted by nobody.
func CanDelete(actor models.User, ownerID *int) bool {
	return ownerID != nil && *ownerID == actor.ID
}
