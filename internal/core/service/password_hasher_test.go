package service

import "testing"

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(4)

	digest, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "s3cret" {
		t.Fatalf("digest must not equal plaintext")
	}
	if !h.Verify("s3cret", digest) {
		t.Fatalf("expected digest to verify against original plaintext")
	}
	if h.Verify("wrong", digest) {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestBcryptHasher_SaltsEveryCall(t *testing.T) {
	h := NewBcryptHasher(4)

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same plaintext must differ")
	}
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	h := NewBcryptHasher(4)

	for _, digest := range []string{"", "not-a-bcrypt-digest", "$2a$garbage"} {
		if h.Verify("anything", digest) {
			t.Fatalf("malformed digest %q must verify as false", digest)
		}
	}
}

func TestBcryptHasher_CostOutOfRange(t *testing.T) {
	h := NewBcryptHasher(99)

	digest, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if !h.Verify("pw", digest) {
		t.Fatalf("expected fallback cost to produce a verifiable digest")
	}
}
