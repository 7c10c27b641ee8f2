// Package digest computes the 32-byte content digests used by the tools:
// SHA-256 for file contents and legacy Keccak-256 (the Ethereum variant)
// for ABI-encoded fingerprints.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Size is the length in bytes of every digest produced by this package.
const Size = 32

// Digest is a 32-byte hash value.
type Digest [Size]byte

// String returns the lowercase hex encoding without prefix.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Hex returns the 0x-prefixed lowercase hex encoding.
func (d Digest) Hex() string {
	return "0x" + d.String()
}

// SHA256 returns the SHA-256 digest of data.
func SHA256(data []byte) Digest {
	return sha256.Sum256(data)
}

// HashReader streams r through SHA-256.
func HashReader(r io.Reader) (Digest, error) {
	hasher := sha256.New()
	if _, err := io.Copy(hasher, r); err != nil {
		return Digest{}, err
	}
	var d Digest
	copy(d[:], hasher.Sum(nil))
	return d, nil
}

// HashFile computes the SHA-256 digest of the file at path. The file is
// streamed, so memory use does not depend on its size.
func HashFile(path string) (Digest, error) {
	file, err := os.Open(path)
	if err != nil {
		return Digest{}, fmt.Errorf("opening %s for hashing: %w", path, err)
	}
	defer file.Close()

	d, err := HashReader(file)
	if err != nil {
		return Digest{}, fmt.Errorf("hashing %s: %w", path, err)
	}
	return d, nil
}

// Keccak256 returns the legacy Keccak-256 digest of the concatenated parts.
// This is the pre-standard padding used by Ethereum, not SHA3-256.
func Keccak256(parts ...[]byte) Digest {
	hasher := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		hasher.Write(p)
	}
	var d Digest
	copy(d[:], hasher.Sum(nil))
	return d
}

// Parse decodes a 64-character hex digest, with or without a 0x prefix.
func Parse(s string) (Digest, error) {
	var d Digest
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return d, fmt.Errorf("parsing digest: %w", err)
	}
	if len(decoded) != Size {
		return d, fmt.Errorf("digest is %d bytes, want %d", len(decoded), Size)
	}
	copy(d[:], decoded)
	return d, nil
}
