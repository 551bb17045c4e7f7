// Package crypto encrypts text fields at rest using Fernet tokens.
// With no key configured, Encrypt and Decrypt are identity functions so the
// rest of the system never has to care whether encryption is on.
package crypto

import (
	"fmt"
	"strings"

	"github.com/fernet/fernet-go"
)

// fernetPrefix is how every Fernet token starts once base64-encoded. Used
// to detect values that failed to decrypt.
const fernetPrefix = "gAAAAA"

// Cipher encrypts and decrypts stored text fields. A nil *Cipher is valid
// and performs no encryption.
type Cipher struct {
	key *fernet.Key
}

// New builds a Cipher from a base64 Fernet key. An empty key returns a nil
// Cipher (encryption disabled).
func New(key string) (*Cipher, error) {
	if key == "" {
		return nil, nil
	}
	k, err := fernet.DecodeKey(key)
	if err != nil {
		return nil, fmt.Errorf("invalid encryption key: %w", err)
	}
	return &Cipher{key: k}, nil
}

// Encrypt returns the Fernet token for text, or text unchanged when no key
// is configured or encryption fails.
func (c *Cipher) Encrypt(text string) string {
	if c == nil || c.key == nil || text == "" {
		return text
	}
	tok, err := fernet.EncryptAndSign([]byte(text), c.key)
	if err != nil {
		return text
	}
	return string(tok)
}

// Decrypt reverses Encrypt. Input that is not a valid token (plaintext rows
// written before encryption was enabled, or with a different key) is
// returned unchanged.
func (c *Cipher) Decrypt(text string) string {
	if c == nil || c.key == nil || text == "" {
		return text
	}
	msg := fernet.VerifyAndDecrypt([]byte(text), 0, []*fernet.Key{c.key})
	if msg == nil {
		return text
	}
	return string(msg)
}

// SafeDecrypt decrypts and blanks values that still look like an
// undecryptable token, so ciphertext never leaks to API responses.
func (c *Cipher) SafeDecrypt(text string) string {
	s := c.Decrypt(text)
	if strings.HasPrefix(s, fernetPrefix) {
		return ""
	}
	return s
}
