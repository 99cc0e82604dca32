package validator

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lestrrat-go/jwx/jwt"
)

const accessKey = "access_info"

// Access is the caller identity extracted from the bearer token. Subject is
// the identity platform's stable subject id and doubles as the user's
// document id.
type Access struct {
	Subject string
	Token   string
}

var (
	ErrNoAuthHeader      = errors.New("Authorization header is missing")
	ErrInvalidAuthHeader = errors.New("Authorization header is malformed")
	ErrMissingSubject    = errors.New("token has no subject")
)

// GetJWSFromRequest extracts a JWS string from an Authorization: Bearer <jws> header
func GetJWSFromRequest(req *http.Request) (string, error) {
	authHdr := req.Header.Get("Authorization")
	// Check for the Authorization header.
	if authHdr == "" {
		return "", ErrNoAuthHeader
	}
	// We expect a header value of the form "Bearer <token>", with 1 space after
	// Bearer, per spec.
	prefix := "Bearer "
	if !strings.HasPrefix(authHdr, prefix) {
		return "", ErrInvalidAuthHeader
	}
	return strings.TrimPrefix(authHdr, prefix), nil
}

// Authenticate parses the bearer token and stores the subject for handlers.
// The identity platform minted and signed the token; we only read the
// subject claim here and reject tokens that don't carry one.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		jws, err := GetJWSFromRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		token, err := jwt.ParseString(jws)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if token.Subject() == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrMissingSubject.Error()})
			return
		}
		c.Set(accessKey, &Access{
			Subject: token.Subject(),
			Token:   jws,
		})
		c.Next()
	}
}

// FromGin returns the Access stored by Authenticate.
func FromGin(c *gin.Context) (*Access, bool) {
	v, ok := c.Get(accessKey)
	if !ok {
		return nil, false
	}
	a, ok := v.(*Access)
	return a, ok
}
