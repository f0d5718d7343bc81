package registry

import (
	"encoding/hex"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/crypto/blake2b"
)

var (
	digestOnce sync.Once
	digest     string
)

// Digest returns the hex BLAKE2b-256 of the reference tables in canonical
// form. Reports carry it so a result can be tied to the exact ages it was
// computed from.
func Digest() string {
	digestOnce.Do(func() {
		sum := blake2b.Sum256([]byte(canonical()))
		digest = hex.EncodeToString(sum[:])
	})
	return digest
}

// ShortDigest returns the first 12 hex characters of Digest.
func ShortDigest() string {
	return Digest()[:12]
}

// canonical renders one line per record:
//
//	S|code|name|age|uncertainty|ap|zrn|ttn
//	M|code|name
func canonical() string {
	var b strings.Builder
	for _, s := range standards {
		b.WriteString("S|")
		b.WriteString(s.Code)
		b.WriteByte('|')
		b.WriteString(s.Name)
		b.WriteByte('|')
		b.WriteString(strconv.FormatFloat(s.AgeMa, 'g', -1, 64))
		b.WriteByte('|')
		b.WriteString(strconv.FormatFloat(s.AgeUncertaintyMa, 'g', -1, 64))
		for _, f := range [...]bool{s.Apatite, s.Zircon, s.Titanite} {
			b.WriteByte('|')
			b.WriteString(strconv.FormatBool(f))
		}
		b.WriteByte('\n')
	}
	for _, m := range minerals {
		b.WriteString("M|")
		b.WriteString(m.Code)
		b.WriteByte('|')
		b.WriteString(m.Name)
		b.WriteByte('\n')
	}
	return b.String()
}
