package encoding

import (
	"errors"
	"strings"
	"testing"

	"github.com/pthm/hxhead"
	"github.com/pthm/hxhead/lib/manifest"
)

func testManifest(t *testing.T) *manifest.Manifest {
	t.Helper()
	m, err := manifest.FromElements(
		hxhead.Title{Text: "Docs"}.Append("Acme", " | "),
		hxhead.Keywords{"go", "html"},
		hxhead.Script{Src: hxhead.Literal("/app.js"), Defer: true},
		hxhead.Google{Index: hxhead.Off},
	)
	if err != nil {
		t.Fatalf("FromElements failed: %v", err)
	}
	return m
}

func compile(t *testing.T, m *manifest.Manifest) string {
	t.Helper()
	h, err := m.Head()
	if err != nil {
		t.Fatalf("Head failed: %v", err)
	}
	return h.Compile()
}

func TestNewEncoder(t *testing.T) {
	// Any key length works; short keys are stretched.
	if _, err := NewEncoder([]byte("short")); err != nil {
		t.Fatalf("NewEncoder with short key failed: %v", err)
	}
	if _, err := NewEncoder([]byte("this-is-a-much-longer-key-than-32-bytes!!")); err != nil {
		t.Fatalf("NewEncoder with long key failed: %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}
	original := testManifest(t)
	want := compile(t, original)

	for _, sealed := range []bool{false, true} {
		token, err := enc.Encode(original, sealed)
		if err != nil {
			t.Fatalf("Encode(sealed=%v) failed: %v", sealed, err)
		}
		if got := strings.Contains(token, "."); got == sealed {
			t.Errorf("Encode(sealed=%v) token %q has wrong form", sealed, token)
		}

		decoded, err := enc.Decode(token)
		if err != nil {
			t.Fatalf("Decode(sealed=%v) failed: %v", sealed, err)
		}
		if got := compile(t, decoded); got != want {
			t.Errorf("sealed=%v: decoded head =\n%s\nwant\n%s", sealed, got, want)
		}
	}
}

func TestSignatureVerificationFailure(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	token, err := enc.Encode(testManifest(t), false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// Replace the signature with 16 zero bytes.
	payload, _, _ := strings.Cut(token, ".")
	tampered := payload + "." + strings.Repeat("A", 22)

	if _, err := enc.Decode(tampered); !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("Expected ErrSignatureInvalid, got: %v", err)
	}
}

func TestDecryptionFailure(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	token, err := enc.Encode(testManifest(t), true)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// Flip the last full base64 character of the ciphertext.
	last := token[len(token)-4]
	repl := byte('A')
	if last == 'A' {
		repl = 'B'
	}
	tampered := token[:len(token)-4] + string(repl) + token[len(token)-3:]

	if _, err := enc.Decode(tampered); !errors.Is(err, ErrDecryptFailed) {
		t.Errorf("Expected ErrDecryptFailed, got: %v", err)
	}
}

func TestInvalidFormat(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"not base64", "!!!"},
		{"too short", "AAAA"},
		{"bad signature encoding", "AAAA.!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := enc.Decode(tt.token); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Decode(%q) = %v, want ErrInvalidFormat", tt.token, err)
			}
		})
	}
}

func TestDifferentKeysCannotDecode(t *testing.T) {
	enc1, _ := NewEncoder([]byte("key-one"))
	enc2, _ := NewEncoder([]byte("key-two"))

	for _, sealed := range []bool{false, true} {
		token, err := enc1.Encode(testManifest(t), sealed)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		if _, err := enc2.Decode(token); err == nil {
			t.Errorf("sealed=%v: expected error when decoding with different key", sealed)
		}
	}
}

func TestEmptyManifest(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	token, err := enc.Encode(&manifest.Manifest{}, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := enc.Decode(token)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(decoded.Elements) != 0 {
		t.Errorf("Elements = %v, want none", decoded.Elements)
	}
}
