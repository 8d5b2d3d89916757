package badgerstore

import (
	"encoding/binary"

	"github.com/duskfeline/catmart/pkg/types"
)

// Numeric key suffixes are big-endian so badger's lexicographic iteration
// order matches numeric order.
func u64ToBytes(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf
}

func bytesToU64(buf []byte) uint64 {
	return binary.BigEndian.Uint64(buf)
}

func scopeKey(scope types.Account) []byte {
	return []byte(prefixScope + string(scope))
}

func counterKey(scope types.Account) []byte {
	return []byte(prefixCounter + string(scope))
}

func eventSeqKey(scope types.Account) []byte {
	return []byte(prefixEventSeq + string(scope))
}

func catKey(scope types.Account, id uint64) []byte {
	key := []byte(prefixCat + string(scope) + ":")
	return append(key, u64ToBytes(id)...)
}

func listingKey(scope types.Account, catID uint64) []byte {
	key := []byte(prefixListing + string(scope) + ":")
	return append(key, u64ToBytes(catID)...)
}

func eventKey(scope types.Account, seq uint64) []byte {
	key := []byte(prefixEvent + string(scope) + ":")
	return append(key, u64ToBytes(seq)...)
}

func eventPrefix(scope types.Account) []byte {
	return []byte(prefixEvent + string(scope) + ":")
}
