package app

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobboard/internal/apperr"
	"jobboard/internal/auth"
)

// requireOwner authorizes an operation on a resource whose stored owner
// reference must equal the authenticated subject. Callers check existence
// first; this only decides ownership.
func requireOwner(owner primitive.ObjectID, ident auth.Identity, action string) error {
	if owner.Hex() != ident.SubjectID {
		return apperr.Newf(http.StatusForbidden, "only the owner can %s", action)
	}
	return nil
}
