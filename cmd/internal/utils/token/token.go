package token

import (
	"clinicdesk/cmd/internal/utils/clock"
	"errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"strconv"
	"strings"
	"time"
)

var ErrMissingToken = errors.New("missing bearer token")

type Claims struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenData is what handlers get back from a verified token.
type TokenData struct {
	UserID   int
	Username string
	Name     string
	Role     string
}

type Issuer struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

func NewIssuer(secret string, ttl time.Duration, clk clock.Clock) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, clock: clk}
}

func (i *Issuer) Issue(data *TokenData) (string, error) {
	now := i.clock.Now()
	claims := &Claims{
		Username: data.Username,
		Name:     data.Name,
		Role:     data.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(data.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

func (i *Issuer) Parse(raw string) (*TokenData, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.clock.Now),
	)
	if err != nil {
		return nil, err
	}

	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return nil, err
	}
	return &TokenData{UserID: id, Username: claims.Username, Name: claims.Name, Role: claims.Role}, nil
}

// ParseTokenDataCtx reads and verifies the Authorization bearer token of the request.
func (i *Issuer) ParseTokenDataCtx(c echo.Context) (*TokenData, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, ErrMissingToken
	}
	return i.Parse(strings.TrimSpace(raw))
}
