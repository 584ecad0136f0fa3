package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

const base36Upper = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	// NewRegistrationID returns REG-<last 6 digits of unix ms>-<5 base36 chars>.
	NewRegistrationID(t time.Time) (string, error)
}

type utils struct{}

func New() IUtils {
	return &utils{}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

func (u *utils) NewRegistrationID(t time.Time) (string, error) {
	millis := strconv.FormatInt(t.UnixMilli(), 10)
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}

	suffix, err := randomString(5, base36Upper)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("REG-")
	b.WriteString(millis)
	b.WriteByte('-')
	b.WriteString(suffix)
	return b.String(), nil
}

func randomString(n int, alphabet string) (string, error) {
	limit := big.NewInt(int64(len(alphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out), nil
}
