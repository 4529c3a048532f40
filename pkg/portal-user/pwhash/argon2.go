package pwhash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrInvalidHash         = errors.New("the encoded hash is not in the correct format")
	ErrIncompatibleVersion = errors.New("incompatible version of argon2")
)

type argonParams struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	saltLength  uint32
	keyLength   uint32
}

var currentParams = argonParams{
	memory:      64 * 1024,
	iterations:  4,
	parallelism: 2,
	saltLength:  16,
	keyLength:   32,
}

// InitArgonParams overrides the default hashing parameters from the service config.
// Zero values keep the current defaults.
func InitArgonParams(memory uint32, iterations uint32, parallelism uint8) {
	if memory > 0 {
		currentParams.memory = memory
	}
	if iterations > 0 {
		currentParams.iterations = iterations
	}
	if parallelism > 0 {
		currentParams.parallelism = parallelism
	}
}

// HashPassword generates an argon2id hash in the standard encoded format.
func HashPassword(password string) (string, error) {
	salt := make([]byte, currentParams.saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey(
		[]byte(password),
		salt,
		currentParams.iterations,
		currentParams.memory,
		currentParams.parallelism,
		currentParams.keyLength,
	)

	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	encodedHash := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		currentParams.memory,
		currentParams.iterations,
		currentParams.parallelism,
		b64Salt,
		b64Hash,
	)
	return encodedHash, nil
}

// ComparePasswordWithHash checks the password against a stored encoded hash.
// The parameters are read from the hash itself, so older hashes stay verifiable
// after the service config changes.
func ComparePasswordWithHash(encodedHash string, password string) (match bool, err error) {
	p, salt, hash, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	otherHash := argon2.IDKey([]byte(password), salt, p.iterations, p.memory, p.parallelism, p.keyLength)

	if subtle.ConstantTimeCompare(hash, otherHash) == 1 {
		return true, nil
	}
	return false, nil
}

func decodeHash(encodedHash string) (p *argonParams, salt, hash []byte, err error) {
	vals := strings.Split(encodedHash, "$")
	if len(vals) != 6 || vals[1] != "argon2id" {
		return nil, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err = fmt.Sscanf(vals[2], "v=%d", &version); err != nil {
		return nil, nil, nil, ErrInvalidHash
	}
	if version != argon2.Version {
		return nil, nil, nil, ErrIncompatibleVersion
	}

	p = &argonParams{}
	if _, err = fmt.Sscanf(vals[3], "m=%d,t=%d,p=%d", &p.memory, &p.iterations, &p.parallelism); err != nil {
		return nil, nil, nil, ErrInvalidHash
	}

	salt, err = base64.RawStdEncoding.Strict().DecodeString(vals[4])
	if err != nil {
		return nil, nil, nil, err
	}
	p.saltLength = uint32(len(salt))

	hash, err = base64.RawStdEncoding.Strict().DecodeString(vals[5])
	if err != nil {
		return nil, nil, nil, err
	}
	p.keyLength = uint32(len(hash))

	return p, salt, hash, nil
}
