package wal

import "encoding/binary"

import "github.com/sirgallo/durability/pkg/utils"


//=========================================== Write Ahead Log Utils


/*
	big endian keys keep the bucket cursor in seqno order
*/

func ConvertIntToBytes(seqno int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(seqno))
	return buf
}

func ConvertBytesToInt(data []byte) int64 {
	return int64(binary.BigEndian.Uint64(data))
}

/*
	Transform Prepare Entry To Bytes:
		convert entries to byte array to be applied to the WAL
*/

func TransformPrepareEntryToBytes(entry *PrepareEntry) ([]byte, error) {
	entryAsBytes, encErr := utils.EncodeStructToBytes[*PrepareEntry](entry)
	if encErr != nil { return nil, encErr }

	return entryAsBytes, nil
}

/*
	Transform Bytes To Prepare Entry:
		convert entries from the WAL from byte array back to a prepare entry
*/

func TransformBytesToPrepareEntry(data []byte) (*PrepareEntry, error) {
	entry, decErr := utils.DecodeBytesToStruct[PrepareEntry](data)
	if decErr != nil { return nil, decErr }

	return entry, nil
}
