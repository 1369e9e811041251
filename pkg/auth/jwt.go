package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const Issuer = "crewmart"

type Role string

const (
	RoleWorker Role = "worker"
	RoleAdmin  Role = "admin"
)

type JWTServiceInterface interface {
	GenerateJWT(identity int64, role Role, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Claims identify the chat user the gateway acts for.
type Claims struct {
	Identity int64 `json:"identity"`
	Role     Role  `json:"role"`
	jwt.StandardClaims
}

type JWTService struct {
	secretKey []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secretKey: []byte(secret)}
}

func (s *JWTService) GenerateJWT(identity int64, role Role, expirationTime time.Time) (string, error) {
	claims := Claims{
		Identity: identity,
		Role:     role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Identity == 0 || claims.Issuer != Issuer {
		return nil, errors.New("invalid token claims")
	}
	if claims.Role != RoleWorker && claims.Role != RoleAdmin {
		return nil, errors.New("invalid token role")
	}

	return claims, nil
}
