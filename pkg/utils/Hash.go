package utils

import "crypto/sha256"
import "encoding/binary"


/*
	hash a key to an index in the range [0, buckets)

	used for distributing keys across lock shards
*/

func HashKeyToIndex(key string, buckets int) int {
	hasher := sha256.New()
	hasher.Write([]byte(key))
	hashBytes := hasher.Sum(nil)

	hashed := binary.BigEndian.Uint64(hashBytes[:8])

	return int(hashed % uint64(buckets))
}
