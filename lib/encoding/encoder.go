// Package encoding packs head manifests into compact tokens that can travel
// through a URL, a cookie or an environment variable.
//
// Tokens come in two forms:
//   - Signed (default): base64 msgpack + HMAC signature, readable but tamper-proof
//   - Sealed: AES-256-GCM, fully opaque
//
// The form is recognized on decode, so callers only choose it when encoding.
package encoding

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/pthm/hxhead/lib/manifest"
)

var (
	// ErrInvalidFormat is returned for a token that is not valid base64 or
	// does not hold a manifest.
	ErrInvalidFormat = errors.New("encoding: invalid token format")

	// ErrSignatureInvalid is returned when a signed token fails verification.
	ErrSignatureInvalid = errors.New("encoding: signature verification failed")

	// ErrDecryptFailed is returned when a sealed token cannot be opened.
	ErrDecryptFailed = errors.New("encoding: decryption failed")
)

// Encoder signs or seals manifests with a shared key.
type Encoder struct {
	key []byte
	gcm cipher.AEAD
}

// NewEncoder creates an encoder for key. Keys shorter than 32 bytes are
// stretched with SHA-256.
func NewEncoder(key []byte) (*Encoder, error) {
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}

	block, err := aes.NewCipher(key[:32])
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Encoder{
		key: key,
		gcm: gcm,
	}, nil
}

// Encode packs m into a token. With sealed set the token is encrypted;
// otherwise it is signed.
func (e *Encoder) Encode(m *manifest.Manifest, sealed bool) (string, error) {
	packed, err := msgpack.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("pack manifest: %w", err)
	}

	if sealed {
		return e.seal(packed)
	}
	return e.sign(packed), nil
}

// Decode unpacks a token produced by Encode with the same key.
func (e *Encoder) Decode(token string) (*manifest.Manifest, error) {
	var packed []byte
	var err error

	if strings.Contains(token, ".") {
		packed, err = e.verify(token)
	} else {
		packed, err = e.open(token)
	}
	if err != nil {
		return nil, err
	}

	var m manifest.Manifest
	if err := msgpack.Unmarshal(packed, &m); err != nil {
		return nil, fmt.Errorf("unpack manifest: %v: %w", err, ErrInvalidFormat)
	}
	return &m, nil
}

// sign creates a signed (but visible) encoding: base64.signature
func (e *Encoder) sign(data []byte) string {
	b64 := base64.RawURLEncoding.EncodeToString(data)
	sig := base64.RawURLEncoding.EncodeToString(e.mac(data))
	return b64 + "." + sig
}

// mac returns the first 16 bytes of the HMAC-SHA256 of data.
func (e *Encoder) mac(data []byte) []byte {
	mac := hmac.New(sha256.New, e.key)
	mac.Write(data)
	return mac.Sum(nil)[:16]
}

func (e *Encoder) verify(token string) ([]byte, error) {
	payload, signature, ok := strings.Cut(token, ".")
	if !ok {
		return nil, fmt.Errorf("missing signature: %w", ErrInvalidFormat)
	}

	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("payload: %v: %w", err, ErrInvalidFormat)
	}

	sig, err := base64.RawURLEncoding.DecodeString(signature)
	if err != nil {
		return nil, fmt.Errorf("signature: %v: %w", err, ErrInvalidFormat)
	}

	if !hmac.Equal(sig, e.mac(data)) {
		return nil, ErrSignatureInvalid
	}
	return data, nil
}

func (e *Encoder) seal(data []byte) (string, error) {
	nonce := make([]byte, e.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	ciphertext := e.gcm.Seal(nonce, nonce, data, nil)
	return base64.RawURLEncoding.EncodeToString(ciphertext), nil
}

func (e *Encoder) open(token string) ([]byte, error) {
	ciphertext, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidFormat)
	}

	if len(ciphertext) < e.gcm.NonceSize() {
		return nil, fmt.Errorf("ciphertext too short: %w", ErrInvalidFormat)
	}

	nonce := ciphertext[:e.gcm.NonceSize()]
	ciphertext = ciphertext[e.gcm.NonceSize():]

	data, err := e.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return data, nil
}
