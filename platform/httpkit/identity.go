package httpkit

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextIdentityKey is the gin context key AuthRequired stores the caller under.
const ContextIdentityKey = "identity"

// Identity is the caller authenticated by AuthRequired.
type Identity struct {
	UserID uuid.UUID
	Roles  []string
}

func (i Identity) HasRole(role string) bool {
	return slices.Contains(i.Roles, role)
}

// GetIdentity returns the caller and whether AuthRequired ran for this request.
func GetIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(ContextIdentityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// MustGetIdentity is GetIdentity for handlers behind AuthRequired. Without an
// identity it aborts with 401 and reports false.
func MustGetIdentity(c *gin.Context) (Identity, bool) {
	id, ok := GetIdentity(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	return id, ok
}
