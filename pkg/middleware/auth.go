package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

// SessionMiddleware переносит bearer-токен пользователя в контекст запроса,
// чтобы запись в удалённый API шла от его имени. Токен не проверяется:
// это делает удалённый API.
type SessionMiddleware struct {
	logger *zap.Logger
}

func NewSessionMiddleware(logger *zap.Logger) *SessionMiddleware {
	return &SessionMiddleware{logger: logger}
}

func (m *SessionMiddleware) Session(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return next(c)
		}

		token := utils.ExtractBearer(authHeader)
		if token == "" || strings.ContainsAny(token, " \t") {
			m.logger.Warn("SessionMiddleware: Неверный формат заголовка Authorization")
			return utils.ErrorResponse(c, apperrors.ErrInvalidToken, m.logger)
		}

		ctx := utils.WithBearerToken(c.Request().Context(), token)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
