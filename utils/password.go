package utils

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/itschibits/sharebnb-api/models"
)

// HashPassword returns the bcrypt hash of plain. bcrypt salts per call,
// so hashing the same password twice yields different hashes.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt hash.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Authenticate looks the user up by username and verifies the password.
// An unknown username and a wrong password are indistinguishable to the
// caller: both return ok == false, never an error, so responses cannot be
// used to enumerate usernames.
func Authenticate(db *gorm.DB, username, password string) (models.User, bool) {
	var user models.User
	if err := db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		return models.User{}, false
	}

	if !VerifyPassword(user.Password, password) {
		return models.User{}, false
	}

	return user, true
}
