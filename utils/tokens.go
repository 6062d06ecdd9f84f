package utils

import (
	"time"

	"github.com/kataras/iris/v12/middleware/jwt"
)

// AccessToken carries the username claim embedded in every issued token.
// Routes behind the verifier middleware read it back with jwt.Get.
type AccessToken struct {
	Username string `json:"username"`
}

const accessTokenTTL = 24 * time.Hour

// CreateToken signs a stateless HS256 token asserting the username.
func CreateToken(secret, username string) (string, error) {
	signer := jwt.NewSigner(jwt.HS256, []byte(secret), accessTokenTTL)

	token, err := signer.Sign(AccessToken{Username: username})
	if err != nil {
		return "", err
	}

	return string(token), nil
}

// TokenVerifier builds the middleware that guards the booking and message
// routes. The four public routes never consume a token.
func TokenVerifier(secret string) *jwt.Verifier {
	verifier := jwt.NewVerifier(jwt.HS256, []byte(secret))
	return verifier
}
