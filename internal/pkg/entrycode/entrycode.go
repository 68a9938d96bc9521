package entrycode

import (
	"crypto/rand"
	"errors"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrGenerationFailed = errors.New("entry code generation failed")
	ErrHashingFailed    = errors.New("entry code hashing failed")
	ErrCodeMismatch     = errors.New("entry code mismatch")
	ErrInvalidCode      = errors.New("invalid entry code")
)

// Ambiguous characters (0/O, 1/I) are excluded so codes survive being read
// off a gate display or printed ticket.
const codeAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const CodeLength = 10

const DefaultCost = bcrypt.DefaultCost

// Generate mints a one-time gate code and the bcrypt hash stored at rest.
// The plaintext is returned exactly once, at entry time.
func Generate() (code string, hash string, err error) {
	buf := make([]byte, CodeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		n, randErr := rand.Int(rand.Reader, max)
		if randErr != nil {
			return "", "", ErrGenerationFailed
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	code = string(buf)

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(code), DefaultCost)
	if err != nil {
		return "", "", ErrHashingFailed
	}

	return code, string(hashedBytes), nil
}

func Verify(hash, code string) error {
	if hash == "" || code == "" {
		return ErrInvalidCode
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrCodeMismatch
		}
		return err
	}

	return nil
}
