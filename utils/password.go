package utils

import (
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"hash"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

// bcrypt rejects input longer than this.
const bcryptMaxInput = 72

// HashPassword returns a salted bcrypt hash of pw. Passwords of any length
// are accepted.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(bcryptInput(pw), bcrypt.DefaultCost)
	return string(b), err
}

// bcryptInput reduces passwords bcrypt cannot take to a base64 sha256 digest.
func bcryptInput(pw string) []byte {
	if len(pw) <= bcryptMaxInput {
		return []byte(pw)
	}
	sum := sha256.Sum256([]byte(pw))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

// CheckPassword reports whether pw matches the stored hash. Hashes written
// by the previous Flask deployment ("pbkdf2:<alg>:<iterations>$salt$hex")
// are verified as well as bcrypt ones.
func CheckPassword(stored, pw string) bool {
	if strings.HasPrefix(stored, "pbkdf2:") {
		return checkPBKDF2(stored, pw)
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), bcryptInput(pw)) == nil
}

func checkPBKDF2(stored, pw string) bool {
	parts := strings.SplitN(stored, "$", 3)
	if len(parts) != 3 {
		return false
	}
	method := strings.Split(parts[0], ":")
	if len(method) != 3 {
		return false
	}
	var h func() hash.Hash
	switch method[1] {
	case "sha256":
		h = sha256.New
	case "sha512":
		h = sha512.New
	default:
		return false
	}
	iter, err := strconv.Atoi(method[2])
	if err != nil || iter <= 0 {
		return false
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil || len(want) == 0 {
		return false
	}
	got := pbkdf2.Key([]byte(pw), []byte(parts[1]), iter, len(want), h)
	return subtle.ConstantTimeCompare(got, want) == 1
}
