// Package auth содержит логику бизнес-уровня для регистрации, входа
// и разрешения токенов аутентификации.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/storefront-backend/internal/identityprovider"
	"github.com/magabrotheeeer/storefront-backend/internal/lib/ident"
	"github.com/magabrotheeeer/storefront-backend/internal/lib/jwt"
	"github.com/magabrotheeeer/storefront-backend/internal/lib/password"
	"github.com/magabrotheeeer/storefront-backend/internal/lib/secrets"
	"github.com/magabrotheeeer/storefront-backend/internal/models"
)

// Ошибки бизнес-уровня. Обработчики сопоставляют их с HTTP-статусами.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrSessionExpired     = errors.New("session expired")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidExchange    = errors.New("invalid session")
)

// sessionTTL — срок жизни сессии внешнего провайдера и самоподписанного токена.
const sessionTTL = 7 * 24 * time.Hour

// cacheTTL — верхняя граница срока жизни записи в кэше разрешенных токенов.
const cacheTTL = 10 * time.Minute

// UserRepository описывает контракт хранилища пользователей и сессий.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, bool, error)
	FindUser(ctx context.Context, userID string) (*models.User, bool, error)
	UpdateUserProfile(ctx context.Context, email, name, picture string) error
	CreateSession(ctx context.Context, session models.Session) error
	FindSession(ctx context.Context, token string) (*models.Session, bool, error)
	DeleteSession(ctx context.Context, token string) error
}

// TokenCache описывает кэш разрешенных токенов.
type TokenCache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// IdentityProvider описывает обмен одноразового exchange id
// на подтвержденные данные пользователя.
type IdentityProvider interface {
	Exchange(ctx context.Context, exchangeID string) (*identityprovider.SessionData, error)
}

// Service отвечает за регистрацию, вход и разрешение токенов.
type Service struct {
	repo      UserRepository
	cache     TokenCache
	idp       IdentityProvider
	jwtMaker  jwt.Maker
	log       *slog.Logger
	resolvers []tokenResolver
}

// New создает новый Service.
func New(repo UserRepository, cache TokenCache, idp IdentityProvider, jwtMaker jwt.Maker, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		idp:      idp,
		jwtMaker: jwtMaker,
		log:      log,
		// Порядок имеет значение: живая сессия провайдера побеждает
		// разбор самоподписанного токена.
		resolvers: []tokenResolver{
			&sessionResolver{repo: repo},
			&jwtResolver{maker: jwtMaker, repo: repo},
		},
	}
}

// Register создает нового пользователя с хэшированием пароля
// и возвращает его вместе с самоподписанным токеном.
func (s *Service) Register(ctx context.Context, email, rawPassword, name string) (*models.User, string, error) {
	const op = "auth.Register"

	_, found, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	if found {
		return nil, "", ErrDuplicateEmail
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		UserID:       ident.New("user"),
		Email:        email,
		Name:         name,
		PasswordHash: hashed,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.jwtMaker.GenerateToken(user.UserID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return &user, token, nil
}

// Login проверяет пароль пользователя и возвращает самоподписанный токен.
// Для учетных записей без пароля (созданных внешним провайдером)
// вход по паролю невозможен.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (*models.User, string, error) {
	const op = "auth.Login"

	user, found, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	if !found || user.PasswordHash == "" {
		return nil, "", ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtMaker.GenerateToken(user.UserID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return user, token, nil
}

// Authenticate разрешает токен в пользователя через упорядоченную цепочку
// резолверов. Результат кэшируется с TTL, не превышающим остаток срока
// действия токена.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	cacheKey := "authtoken:" + token
	if s.cache != nil {
		var cached models.User
		if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
			return &cached, nil
		}
	}

	for _, r := range s.resolvers {
		user, ttl, err := r.Resolve(ctx, token)
		if errors.Is(err, errNotApplicable) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if s.cache != nil && ttl > 0 {
			if cerr := s.cache.Set(ctx, cacheKey, user, ttl); cerr != nil {
				s.log.Warn("failed to cache resolved token", slog.String("error", cerr.Error()))
			}
		}
		return user, nil
	}
	return nil, ErrUnauthenticated
}

// ExchangeSession обменивает одноразовый exchange id у внешнего провайдера,
// создает или обновляет пользователя по email и открывает новую 7-дневную сессию.
func (s *Service) ExchangeSession(ctx context.Context, exchangeID string) (*models.User, string, error) {
	const op = "auth.ExchangeSession"

	data, err := s.idp.Exchange(ctx, exchangeID)
	if err != nil {
		if errors.Is(err, identityprovider.ErrRejected) {
			return nil, "", ErrInvalidExchange
		}
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	user, found, err := s.repo.FindUserByEmail(ctx, data.Email)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	if found {
		if err := s.repo.UpdateUserProfile(ctx, data.Email, data.Name, data.Picture); err != nil {
			return nil, "", fmt.Errorf("%s: %w", op, err)
		}
		user.Name = data.Name
		user.Picture = data.Picture
	} else {
		user = &models.User{
			UserID:    ident.New("user"),
			Email:     data.Email,
			Name:      data.Name,
			Picture:   data.Picture,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.repo.CreateUser(ctx, *user); err != nil {
			return nil, "", fmt.Errorf("%s: %w", op, err)
		}
	}

	sessionToken := data.SessionToken
	if sessionToken == "" {
		sessionToken, err = secrets.Hex(32)
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", op, err)
		}
	}
	now := time.Now().UTC()
	session := models.Session{
		SessionToken: sessionToken,
		UserID:       user.UserID,
		ExpiresAt:    now.Add(sessionTTL),
		CreatedAt:    now,
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return user, sessionToken, nil
}

// Logout удаляет сессию и сбрасывает кэш токена.
func (s *Service) Logout(ctx context.Context, token string) error {
	const op = "auth.Logout"

	if err := s.repo.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, "authtoken:"+token); err != nil {
			s.log.Warn("failed to invalidate token cache", slog.String("error", err.Error()))
		}
	}
	return nil
}
