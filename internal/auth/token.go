package auth

import (
	"fmt"
	"time"

	"github.com/GoArmGo/BookingApp/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims — набор утверждений нашего JWT.
// Единственный subject — неизменяемый UUID пользователя.
// Email и прочие изменяемые поля в токен не кладем, при необходимости
// они разрешаются через хранилище по user_id.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService выпускает и проверяет подписанные bearer-токены.
// Токены самодостаточны: никакого состояния сессий на сервере нет,
// отзыв не поддерживается, срок жизни ограничен expiry.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService создает новый экземпляр TokenService.
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Issue выпускает подписанный HS256 токен для пользователя.
// Для одного и того же секрета и user_id результат детерминирован
// с точностью до временных клеймов.
func (s *TokenService) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}
	return signed, nil
}

// Verify проверяет подпись и срок жизни токена и возвращает user_id из него.
// Любая проблема (битый токен, чужой секрет, неподходящий алгоритм,
// пустой subject, истекший срок) схлопывается в domain.ErrInvalidToken —
// наружу детали не отдаем.
func (s *TokenService) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return uuid.Nil, domain.ErrInvalidToken
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, domain.ErrInvalidToken
	}

	return claims.UserID, nil
}
