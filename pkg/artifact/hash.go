// pkg/artifact/hash.go
package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"strings"

	"github.com/latencyflex/lfx2-install/pkg/core"
)

// Nix uses a special base32 alphabet (without E, O, U, T)
const nixBase32Alphabet = "0123456789abcdfghijklmnpqrsvwxyz"

// toNixBase32 converts a byte slice to a Nix-compatible base32 encoded string
func toNixBase32(bytes []byte) string {
	length := (len(bytes)*8-1)/5 + 1
	result := make([]byte, length)

	for n := 0; n < length; n++ {
		b := n * 5
		i := b / 8
		j := b % 8

		v := bytes[i] >> uint(j)
		if i < len(bytes)-1 && j > 3 {
			v |= bytes[i+1] << uint(8-j)
		}

		result[length-n-1] = nixBase32Alphabet[v&0x1F]
	}

	return string(result)
}

// Digest is a SHA-256 of the library bytes
type Digest [sha256.Size]byte

// Hex returns the lowercase hex form
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// NixBase32 returns the form used in Nix store paths and narinfo files
func (d Digest) NixBase32() string {
	return toNixBase32(d[:])
}

func (d Digest) String() string {
	return "sha256:" + d.NixBase32()
}

// Matches reports whether expected names this digest. expected may be hex or
// nix-base32, optionally prefixed with "sha256:" or "sha256-".
func (d Digest) Matches(expected string) bool {
	expected = strings.TrimSpace(expected)
	expected = strings.TrimPrefix(expected, "sha256:")
	expected = strings.TrimPrefix(expected, "sha256-")

	switch len(expected) {
	case hex.EncodedLen(sha256.Size):
		return strings.EqualFold(expected, d.Hex())
	default:
		return expected == d.NixBase32()
	}
}

// HashingReader computes a digest of everything read through it
type HashingReader struct {
	r io.Reader
	h hash.Hash
}

// NewHashingReader wraps r
func NewHashingReader(r io.Reader) *HashingReader {
	h := sha256.New()
	return &HashingReader{r: io.TeeReader(r, h), h: h}
}

func (hr *HashingReader) Read(p []byte) (int, error) {
	return hr.r.Read(p)
}

// Sum returns the digest of the bytes read so far
func (hr *HashingReader) Sum() Digest {
	var d Digest
	copy(d[:], hr.h.Sum(nil))
	return d
}

// Verify compares the digest so far against expected. An empty expected
// digest always passes.
func (hr *HashingReader) Verify(expected string) error {
	if expected == "" {
		return nil
	}
	actual := hr.Sum()
	if !actual.Matches(expected) {
		return fmt.Errorf("%w: expected %s, got %s", core.ErrHashMismatch, expected, actual)
	}
	return nil
}
