package security_test

import (
	"strings"
	"testing"

	"github.com/goprotex/Disaster-Response/internal/security"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := security.HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !strings.HasPrefix(string(hash), "$argon2id$v=19$") {
		t.Fatalf("hash format = %s", hash)
	}

	ok, err := security.VerifyPassword("correct horse battery staple", hash)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if !ok {
		t.Error("correct password rejected")
	}

	ok, err = security.VerifyPassword("wrong password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if ok {
		t.Error("wrong password accepted")
	}
}

func TestPasswordHashesAreSalted(t *testing.T) {
	a, err := security.HashPassword("same input")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	b, err := security.HashPassword("same input")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if string(a) == string(b) {
		t.Error("two hashes of the same password are identical")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if _, err := security.VerifyPassword("x", []byte("not a hash")); err == nil {
		t.Error("malformed hash did not error")
	}
	if _, err := security.VerifyPassword("x", []byte("$argon2i$v=19$t=3,m=65536,p=2$c2FsdA$aGFzaA==")); err == nil {
		t.Error("wrong variant did not error")
	}
}
