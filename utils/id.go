package utils

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// GenerateLoginCode returns a random numeric code of the given length for
// web-portal logins. Uniqueness is not guaranteed; collisions are accepted
// at prototype scale.
func GenerateLoginCode(length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}
	return b.String()
}
