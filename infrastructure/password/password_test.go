package password

import (
	"errors"
	"strings"
	"testing"
)

var fastParams = Params{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

func TestHashAndVerify(t *testing.T) {
	h := NewHasher(fastParams)
	encoded, err := h.Hash("password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$v=19$m=8192,t=1,p=1$") {
		t.Fatalf("unexpected encoding %q", encoded)
	}

	ok, err := h.Verify("password", encoded)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatalf("expected password to match")
	}

	ok, err = h.Verify("wrong", encoded)
	if err != nil {
		t.Fatalf("verify wrong: %v", err)
	}
	if ok {
		t.Fatalf("expected password mismatch")
	}
}

func TestHashSaltsEachCall(t *testing.T) {
	h := NewHasher(fastParams)
	a, _ := h.Hash("password")
	b, _ := h.Hash("password")
	if a == b {
		t.Fatalf("expected distinct salts")
	}
}

func TestVerifyUsesEncodedParams(t *testing.T) {
	encoded, err := NewHasher(fastParams).Hash("password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	ok, err := Default().Verify("password", encoded)
	if err != nil || !ok {
		t.Fatalf("expected match across hashers, ok=%v err=%v", ok, err)
	}
}

func TestHashRejectsBlank(t *testing.T) {
	if _, err := Default().Hash("   "); !errors.Is(err, ErrRequired) {
		t.Fatalf("expected ErrRequired, got %v", err)
	}
}

func TestVerifyRejectsMalformed(t *testing.T) {
	for _, encoded := range []string{"", "plain", "$argon2i$v=19$m=1,t=1,p=1$a$b", "$argon2id$v=19$m=x$a$b"} {
		if _, err := Default().Verify("password", encoded); !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("expected ErrInvalidFormat for %q, got %v", encoded, err)
		}
	}
}
