// Package gpg provides GPG signature verification capabilities.
package gpg

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
)

// Verifier checks detached armored signatures against a pinned keyring.
// ProtonMail's go-crypto is a maintained, modern fork of
// golang.org/x/crypto/openpgp; this package is in external-adapters to
// isolate the dependency.
type Verifier struct {
	keyring openpgp.EntityList
}

// NewVerifier creates a verifier with an empty keyring. Import keys
// before verifying.
func NewVerifier() *Verifier {
	return &Verifier{
		keyring: make(openpgp.EntityList, 0),
	}
}

// ImportKeyringFile loads an armored keyring from disk. Keys are pinned
// in the repository; there is no keyserver lookup.
func (v *Verifier) ImportKeyringFile(path string) error {
	//nolint:gosec // G304: path is the pinned keyring location from configuration
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open keyring: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	keys, err := openpgp.ReadArmoredKeyRing(f)
	if err != nil {
		return fmt.Errorf("failed to read keyring: %w", err)
	}
	if len(keys) == 0 {
		return fmt.Errorf("no keys found in %s", path)
	}

	v.keyring = append(v.keyring, keys...)
	return nil
}

// KeyringSize returns the number of imported keys.
func (v *Verifier) KeyringSize() int {
	return len(v.keyring)
}

// VerifyDetached verifies an armored detached signature over signed.
func (v *Verifier) VerifyDetached(signed, armoredSig []byte) error {
	if len(v.keyring) == 0 {
		return fmt.Errorf("no GPG keys imported for verification")
	}

	_, err := openpgp.CheckArmoredDetachedSignature(
		v.keyring, bytes.NewReader(signed), bytes.NewReader(armoredSig), nil)
	if err != nil {
		return fmt.Errorf("signature check failed: %w", err)
	}

	return nil
}
