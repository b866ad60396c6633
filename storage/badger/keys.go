package badger

import (
	"fmt"

	"github.com/poiesic/schoolfinder/core"
)

const (
	responsePrefix = "resp"
)

// makeResponseKey hashes a cache key (endpoint plus serialized params) into
// a fixed-width badger key. The full key is stored in the entry itself so a
// hash collision reads as a miss.
func makeResponseKey(key string) []byte {
	return []byte(fmt.Sprintf("%s:%016x", responsePrefix, uint64(core.IDFromContent(key))))
}
