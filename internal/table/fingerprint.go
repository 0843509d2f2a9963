package table

import (
	"encoding/json"
	"fmt"

	"github.com/zeebo/blake3"
)

type fingerprint [32]byte

// fingerprintOf hashes the JSON text of a slice so two slices with equal
// content share a fingerprint regardless of their backing arrays.
func fingerprintOf(slice []Record) fingerprint {
	if slice == nil {
		slice = []Record{}
	}
	encoded, err := json.Marshal(slice)
	if err != nil {
		encoded = []byte(fmt.Sprintf("%#v", slice))
	}
	return blake3.Sum256(encoded)
}
