package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// RoleAdmin единственная роль, которую выдает сервис
const RoleAdmin = "admin"

const issuer = "barber-backend"

// Claims содержимое токена администратора
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Credentials настроенные учетные данные администратора
// Если задан PasswordHash (bcrypt), открытый Password игнорируется
type Credentials struct {
	Username     string
	Password     string
	PasswordHash string
}

// Service проверка учетных данных и выпуск подписанных токенов с ограниченным сроком жизни
type Service struct {
	creds        Credentials
	secret       []byte
	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(creds Credentials, secret string, ttl time.Duration, logger Logger) *Service {
	return &Service{
		creds:        creds,
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Login проверяет логин и пароль и возвращает токен
func (s *Service) Login(username, password string) (string, time.Time, error) {
	if !s.checkCredentials(username, password) {
		s.logger.Warn("Login: rejected credentials for username=%q", username)
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := s.timeProvider.Now()
	expiresAt := now.Add(s.ttl)

	claims := Claims{
		Username: username,
		Role:     RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.logger.Error("Login: failed to sign token: %v", err)
		return "", time.Time{}, fmt.Errorf("%w: failed to sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: issued admin token for username=%q, expires_at=%s", username, expiresAt.Format(time.RFC3339))
	return token, expiresAt, nil
}

// ValidateToken проверяет подпись, срок действия и роль токена
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.timeProvider.Now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.Role != RoleAdmin {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) checkCredentials(username, password string) bool {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) == 1

	var passwordOK bool
	if s.creds.PasswordHash != "" {
		passwordOK = bcrypt.CompareHashAndPassword([]byte(s.creds.PasswordHash), []byte(password)) == nil
	} else {
		passwordOK = s.creds.Password != "" &&
			subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password)) == 1
	}

	return usernameOK && passwordOK
}
