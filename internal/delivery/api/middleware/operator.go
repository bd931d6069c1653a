package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"cafemap/internal/delivery/api/response"
	deliverycontext "cafemap/internal/delivery/context"
	"cafemap/internal/domain/entity"
	"cafemap/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

var errInvalidHeader = errors.New("authorization header must use the Bearer scheme")

// OperatorAuthParams holds dependencies for OperatorAuth, injected by Fx.
type OperatorAuthParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// OperatorAuth turns operator bearer tokens into the operator capability.
// Token issuance belongs to an external auth service; only validation happens here.
type OperatorAuth struct {
	tokens service.TokenService
	logger *slog.Logger
}

// NewOperatorAuth creates the operator authentication middleware
func NewOperatorAuth(params OperatorAuthParams) *OperatorAuth {
	return &OperatorAuth{
		tokens: params.TokenService,
		logger: params.Logger,
	}
}

// Optional grants the operator capability when a valid operator token is present.
// Requests without a token continue as public; a malformed or expired token is rejected.
func (m *OperatorAuth) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			deliverycontext.SetCapability(c, entity.Public, "")

			return next(c)
		}

		if err := m.authenticate(c, header); err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		return next(c)
	}
}

// RequireOperator rejects requests that do not carry a valid operator token.
func (m *OperatorAuth) RequireOperator(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is required")
		}

		if err := m.authenticate(c, header); err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		if !deliverycontext.GetCapability(c).Operator {
			return response.Forbidden(c, "FORBIDDEN", "Operator role required")
		}

		return next(c)
	}
}

func (m *OperatorAuth) authenticate(c echo.Context, header string) error {
	tokenString, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || tokenString == "" {
		return errInvalidHeader
	}

	claims, err := m.tokens.ValidateToken(tokenString)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Rejected bearer token", slog.Any("error", err))

		return err
	}

	capability := entity.Public
	if slices.Contains(claims.Roles, service.RoleOperator) {
		capability = entity.OperatorCapability
	}
	deliverycontext.SetCapability(c, capability, claims.Subject)

	return nil
}
