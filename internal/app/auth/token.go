// Package auth отвечает за выпуск и проверку подписанных сессионных токенов.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName — имя cookie, в котором хранится сессионный JWT.
const CookieName = "jwt"

// TokenExp задаёт срок жизни сессионного токена.
const TokenExp = 24 * time.Hour

// Claims расширяет jwt.RegisteredClaims, добавляя UserID –
// уникальный идентификатор пользователя.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// NewToken создаёт и подписывает JWT для заданного userID и секрета.
func NewToken(userID, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExp)),
		},
		UserID: userID,
	})

	return token.SignedString([]byte(secret))
}

// ParseToken проверяет подпись и срок действия токена
// и возвращает его claims. Токен, подписанный другим методом
// или другим секретом, отклоняется.
func ParseToken(raw, secret string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
