package gearguard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

// TokenSource выдаёт bearer-токен для записи в API.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Invalidator сбрасывает закешированный токен после ответа 401.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// StaticToken - заранее выданный токен из конфигурации.
type StaticToken string

func (t StaticToken) Token(context.Context) (string, error) {
	if t == "" {
		return "", apperrors.ErrMissingCredentials
	}
	return string(t), nil
}

// SessionToken берёт токен UI-сессии, положенный в контекст контроллером.
type SessionToken struct{}

func (SessionToken) Token(ctx context.Context) (string, error) {
	if token, ok := utils.BearerTokenFromCtx(ctx); ok {
		return token, nil
	}
	return "", apperrors.ErrMissingCredentials
}

// Chain опрашивает источники по порядку до первого, у которого есть токен.
type Chain []TokenSource

func (c Chain) Token(ctx context.Context) (string, error) {
	for _, source := range c {
		token, err := source.Token(ctx)
		if err == nil {
			return token, nil
		}
		if !errors.Is(err, apperrors.ErrMissingCredentials) {
			return "", err
		}
	}
	return "", apperrors.ErrMissingCredentials
}

func (c Chain) Invalidate(ctx context.Context) error {
	var errs []error
	for _, source := range c {
		if inv, ok := source.(Invalidator); ok {
			errs = append(errs, inv.Invalidate(ctx))
		}
	}
	return errors.Join(errs...)
}

// PasswordLogin получает токен через POST /auth/login и кеширует его
// до истечения exp из JWT минус минута.
type PasswordLogin struct {
	httpClient *http.Client
	loginURL   string
	username   string
	password   string
	fallback   time.Duration
	cache      repositories.CacheRepositoryInterface
	logger     *zap.Logger

	mu  sync.Mutex
	now func() time.Time
}

func NewPasswordLogin(
	baseURL, username, password string,
	httpClient *http.Client,
	cache repositories.CacheRepositoryInterface,
	fallbackTTL time.Duration,
	logger *zap.Logger,
) *PasswordLogin {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &PasswordLogin{
		httpClient: httpClient,
		loginURL:   baseURL + "/auth/login",
		username:   username,
		password:   password,
		fallback:   fallbackTTL,
		cache:      cache,
		logger:     logger.Named("gearguard_auth"),
		now:        time.Now,
	}
}

func (l *PasswordLogin) cacheKey() string {
	return fmt.Sprintf(constants.CacheKeyAPIToken, l.username)
}

func (l *PasswordLogin) Token(ctx context.Context) (string, error) {
	if l.username == "" || l.password == "" {
		return "", apperrors.ErrMissingCredentials
	}
	if token, err := l.cache.Get(ctx, l.cacheKey()); err == nil {
		return token, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Повторная проверка: другой вызов мог уже залогиниться.
	if token, err := l.cache.Get(ctx, l.cacheKey()); err == nil {
		return token, nil
	} else if !errors.Is(err, repositories.ErrCacheMiss) {
		l.logger.Warn("Кеш токенов недоступен, выполняем вход", zap.Error(err))
	}

	token, err := l.login(ctx)
	if err != nil {
		return "", err
	}

	if ttl := l.ttlFor(token); ttl > 0 {
		if err := l.cache.Set(ctx, l.cacheKey(), token, ttl); err != nil {
			l.logger.Warn("Не удалось сохранить токен в кеш", zap.Error(err))
		}
	}
	return token, nil
}

func (l *PasswordLogin) Invalidate(ctx context.Context) error {
	return l.cache.Del(ctx, l.cacheKey())
}

func (l *PasswordLogin) login(ctx context.Context) (string, error) {
	form := url.Values{"username": {l.username}, "password": {l.password}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("ошибка создания запроса на аутентификацию: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ошибка выполнения запроса на аутентификацию: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения ответа аутентификации: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &apperrors.APIError{
			Method:     http.MethodPost,
			Endpoint:   "/auth/login",
			StatusCode: resp.StatusCode,
			Detail:     parseDetail(body),
		}
	}

	var authResp dto.LoginResponseDTO
	if err := json.Unmarshal(body, &authResp); err != nil {
		return "", fmt.Errorf("ошибка парсинга ответа с токеном: %w", err)
	}
	if authResp.AccessToken == "" {
		return "", fmt.Errorf("%w: API аутентификации не вернул access_token", apperrors.ErrInvalidToken)
	}

	l.logger.Info("Получен токен API", zap.String("username", authResp.Username), zap.String("role", authResp.Role))
	return authResp.AccessToken, nil
}

// ttlFor читает exp без проверки подписи: ключа у клиента нет.
func (l *PasswordLogin) ttlFor(token string) time.Duration {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time.Sub(l.now()) - time.Minute
		}
	}
	return l.fallback
}
