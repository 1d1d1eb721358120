package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"property_manager/internal/domain/entities"
	"property_manager/internal/infrastructure/logging"
	"property_manager/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const viewerKey = "viewer"

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	errAccessDenied = pkg.NewDomainErrorSimple("ACCESS_DENIED", "Access denied", http.StatusForbidden)
)

var ErrMissingJWTSecret = errors.New("missing JWT_SECRET")

// Claims is the bearer token payload issued by the identity service.
type Claims struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Authenticator struct {
	secret []byte
	issuer string
}

func NewAuthenticator(secret, issuer string) (*Authenticator, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingJWTSecret
	}
	return &Authenticator{secret: []byte(secret), issuer: issuer}, nil
}

// IssueToken signs a token for viewer. Used by the CLI and tests; production
// tokens come from the identity service.
func (a *Authenticator) IssueToken(viewer entities.Viewer, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	now := time.Now()
	claims := &Claims{
		ID:   viewer.UserID,
		Role: string(viewer.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.issuer,
			Subject:   viewer.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// ParseToken validates signature, expiry and issuer and returns the caller.
func (a *Authenticator) ParseToken(raw string) (entities.Viewer, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return entities.Viewer{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return entities.Viewer{}, jwt.ErrTokenInvalidClaims
	}

	role, ok := entities.ParseRole(claims.Role)
	if !ok || strings.TrimSpace(claims.ID) == "" {
		return entities.Viewer{}, jwt.ErrTokenInvalidClaims
	}
	return entities.Viewer{UserID: strings.TrimSpace(claims.ID), Role: role}, nil
}

// RequireAuth rejects requests without a valid bearer token and stores the
// viewer on the gin context.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		viewer, err := a.ParseToken(raw)
		if err != nil {
			logging.FromContext(c.Request.Context()).WithError(err).Warn("[http][auth] token rejected")
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		SetViewer(c, viewer)
		c.Next()
	}
}

// RequireRoles must run after RequireAuth.
func RequireRoles(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer, ok := CurrentViewer(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		for _, r := range roles {
			if viewer.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(errAccessDenied.HTTPStatus, errAccessDenied.ToHTTPError())
	}
}

// SetViewer stores viewer on c and tags the request logger with it.
func SetViewer(c *gin.Context, viewer entities.Viewer) {
	c.Set(viewerKey, viewer)
	ctx := c.Request.Context()
	entry := logging.FromContext(ctx).WithField("user_id", viewer.UserID)
	c.Request = c.Request.WithContext(logging.WithContext(ctx, entry))
}

func CurrentViewer(c *gin.Context) (entities.Viewer, bool) {
	v, ok := c.Get(viewerKey)
	if !ok {
		return entities.Viewer{}, false
	}
	viewer, ok := v.(entities.Viewer)
	return viewer, ok
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
