package vbucket

import "github.com/sirgallo/durability/pkg/utils"


//=========================================== VBucket Utils


func (vb *VBucket) bucketForKey(key string) *hashBucket {
	return vb.buckets[utils.HashKeyToIndex(key, NumHashBuckets)]
}
