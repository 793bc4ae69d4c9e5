package notes

import (
	"golang.org/x/crypto/sha3"
)

// Fingerprint returns the Keccak-256 hash of the printed form of the table.
// Two tables print identically exactly when their fingerprints match.
func (t Table) Fingerprint() [32]byte {
	w := sha3.NewLegacyKeccak256()
	for _, line := range t.Lines() {
		w.Write([]byte(line.Text))
		w.Write([]byte{'\n'})
	}

	var h [32]byte
	w.Sum(h[:0])
	return h
}
