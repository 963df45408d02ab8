package pbxproj

import (
	crand "crypto/rand"
	"crypto/sha1"
	"encoding/binary"
	"encoding/hex"
	"math/rand"
	"strconv"
	"strings"
	"sync"
)

// UIDLen is the length of a record identifier: 24 uppercase hex digits.
const UIDLen = 24

var (
	uidOnce sync.Once
	uidRand *rand.Rand
)

// uidSource is the process-wide random source behind UID generation,
// seeded once from crypto/rand. It is not safe for concurrent use, which
// matches the single-owner document model.
func uidSource() *rand.Rand {
	uidOnce.Do(func() {
		var seed [8]byte
		if _, err := crand.Read(seed[:]); err != nil {
			panic("pbxproj: random seed failed: " + err.Error())
		}
		uidRand = rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(seed[:]))))
	})
	return uidRand
}

// NewUID returns a fresh identifier absent from s. Collisions are
// practically impossible; the containment loop is a correctness
// backstop, not the primary defense.
func NewUID(s *Store) string {
	uid := generateUID()
	for s.Contains(uid) {
		uid = generateUID()
	}
	return uid
}

func generateUID() string {
	n := uidSource().Int31()
	sum := sha1.Sum([]byte(strconv.FormatInt(int64(n), 10)))
	return strings.ToUpper(hex.EncodeToString(sum[:]))[:UIDLen]
}
