package rand

import (
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"
)

const (
	seedInfo   = "lenstra-ecm/chacha20"
	workerInfo = "lenstra-ecm/worker"
)

// keystream is an io.Reader over the ChaCha20 keystream
type keystream struct {
	cipher *chacha20.Cipher
}

func (k *keystream) Read(p []byte) (int, error) {
	clear(p)
	k.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// NewSeededSource returns a deterministic source: the same seed always
// produces the same sequence of integers. The seed is expanded with HKDF
// into a ChaCha20 key and nonce.
func NewSeededSource(seed []byte) (*ReaderSource, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}

	material := make([]byte, chacha20.KeySize+chacha20.NonceSize)
	kdf := hkdf.New(sha256.New, seed, nil, []byte(seedInfo))
	if _, err := io.ReadFull(kdf, material); err != nil {
		return nil, err
	}

	c, err := chacha20.NewUnauthenticatedCipher(material[:chacha20.KeySize], material[chacha20.KeySize:])
	if err != nil {
		return nil, err
	}

	return &ReaderSource{r: &keystream{cipher: c}}, nil
}

// DeriveSeed derives an independent seed for the given worker index from a
// master seed, so concurrent workers never share a stream.
func DeriveSeed(master []byte, worker int) ([]byte, error) {
	if len(master) == 0 {
		return nil, ErrEmptySeed
	}
	if worker < 0 {
		return nil, ErrInvalidWorker
	}

	info := binary.BigEndian.AppendUint64([]byte(workerInfo), uint64(worker))
	seed := make([]byte, sha256.Size)
	if _, err := io.ReadFull(hkdf.New(sha256.New, master, nil, info), seed); err != nil {
		return nil, err
	}

	return seed, nil
}

// SeedFromInt64 encodes n as seed material, for callers that think of
// seeds as numbers.
func SeedFromInt64(n int64) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(n))
}
