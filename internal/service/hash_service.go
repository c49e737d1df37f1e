package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// argon2Params pins the Argon2id cost settings used for new hashes. Verify
// reads the settings back out of the stored hash, so these can be raised
// later without invalidating existing credentials.
type argon2Params struct {
	memory  uint32
	passes  uint32
	threads uint8
	saltLen uint32
	keyLen  uint32
}

var defaultArgon2Params = argon2Params{
	memory:  64 * 1024,
	passes:  1,
	threads: 4,
	saltLen: 16,
	keyLen:  32,
}

// Argon2HashService implements ports.HashService with Argon2id hashes in
// PHC string format ($argon2id$v=19$m=...,t=...,p=...$salt$hash).
type Argon2HashService struct {
	params argon2Params
}

func NewArgon2HashService() *Argon2HashService {
	return &Argon2HashService{params: defaultArgon2Params}
}

func (s *Argon2HashService) Hash(password string) (string, error) {
	p := s.params

	salt := make([]byte, p.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, p.passes, p.memory, p.threads, p.keyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.memory, p.passes, p.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return encoded, nil
}

// Verify recomputes the hash with the parameters embedded in encodedHash and
// compares in constant time.
func (s *Argon2HashService) Verify(password string, encodedHash string) (bool, error) {
	p, salt, key, err := parsePHC(encodedHash)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, p.passes, p.memory, p.threads, p.keyLen)
	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func parsePHC(encoded string) (p argon2Params, salt, key []byte, err error) {
	fields := strings.Split(encoded, "$")
	if len(fields) != 6 || fields[0] != "" {
		return p, nil, nil, fmt.Errorf("malformed argon2 hash")
	}
	if fields[1] != "argon2id" {
		return p, nil, nil, fmt.Errorf("unsupported hash algorithm %q", fields[1])
	}

	var version int
	if _, err = fmt.Sscanf(fields[2], "v=%d", &version); err != nil {
		return p, nil, nil, fmt.Errorf("parsing argon2 version: %w", err)
	}
	if _, err = fmt.Sscanf(fields[3], "m=%d,t=%d,p=%d", &p.memory, &p.passes, &p.threads); err != nil {
		return p, nil, nil, fmt.Errorf("parsing argon2 params: %w", err)
	}

	if salt, err = base64.RawStdEncoding.DecodeString(fields[4]); err != nil {
		return p, nil, nil, fmt.Errorf("decoding salt: %w", err)
	}
	if key, err = base64.RawStdEncoding.DecodeString(fields[5]); err != nil {
		return p, nil, nil, fmt.Errorf("decoding key: %w", err)
	}
	p.keyLen = uint32(len(key))

	return p, salt, key, nil
}
