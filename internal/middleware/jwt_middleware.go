package middleware

import (
	"strings"

	"candela/internal/apperrors"
	"candela/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
)

const identityKey = "identity"

// Identity returns the authenticated caller installed by AuthRequired or
// OptionalAuth, or nil for anonymous requests.
func Identity(c *fiber.Ctx) *services.Identity {
	ident, _ := c.Locals(identityKey).(*services.Identity)
	return ident
}

// AuthRequired is a Fiber middleware that rejects requests without a valid
// JWT and installs the caller's typed Identity into the request locals.
// adminEmails is the injected admin allow-list; membership is compared
// case-insensitively.
func AuthRequired(authService *services.AuthService, adminEmails []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := identityFromRequest(c, authService, adminEmails)
		if err != nil {
			return err
		}
		c.Locals(identityKey, ident)
		return c.Next()
	}
}

// OptionalAuth installs an Identity when a valid token is presented but
// lets anonymous requests through. Used for guest-capable routes like
// checkout.
func OptionalAuth(authService *services.AuthService, adminEmails []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("Authorization") != "" {
			if ident, err := identityFromRequest(c, authService, adminEmails); err == nil {
				c.Locals(identityKey, ident)
			}
		}
		return c.Next()
	}
}

// AdminRequired gates a route on the admin allow-list. Must run after
// AuthRequired.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident := Identity(c)
		if ident == nil {
			return apperrors.Unauthorized("authentication required")
		}
		if !ident.Admin {
			return apperrors.Forbidden("admin access required")
		}
		return c.Next()
	}
}

func identityFromRequest(c *fiber.Ctx, authService *services.AuthService, adminEmails []string) (*services.Identity, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, apperrors.Unauthorized("Authorization header is required")
	}

	// Expected format: "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		return nil, apperrors.Unauthorized("Authorization header format must be 'Bearer <token>'")
	}

	claims, err := authService.ValidateToken(parts[1])
	if err != nil {
		return nil, apperrors.Unauthorized("invalid or expired token")
	}

	return identityFromClaims(claims, adminEmails), nil
}

func identityFromClaims(claims jwt.MapClaims, adminEmails []string) *services.Identity {
	userID, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	return &services.Identity{
		UserID: userID,
		Email:  email,
		Admin:  isAdminEmail(email, adminEmails),
	}
}

func isAdminEmail(email string, adminEmails []string) bool {
	for _, admin := range adminEmails {
		if strings.EqualFold(strings.TrimSpace(admin), email) {
			return true
		}
	}
	return false
}
