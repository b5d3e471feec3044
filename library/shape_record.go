package library

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/TriM-Organization/bedrock-shape/utils"
	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

// ShapeRecord records the revisions of a named shape.
//
// Only the latest revision is stored as it is, and each earlier revision
// is stored as a patch that converts the revision after it to itself.
// In other words, the ShapeRecord holds the history of this shape.
//
// Note that it's unsafe for multiple thread to access this
// struct due to we don't use mutex to ensure the operation
// is atomic.
//
// So, it's your responsibility to make ensure there is only
// one thread is using this object.
type ShapeRecord struct {
	db          DB
	name        string
	releaseFunc func()

	isReadOnly bool
	isEmpty    bool
	isNew      bool

	id               uuid.UUID
	revisionUnixTime []int64

	barrierLeft  uint
	barrierRight uint
	maxLimit     uint

	latestPayload []byte
}

// NewShapeRecord gets the record of the shape whose name is name.
//
// Note that if record of current shape is not exist, then we will not create a record
// but return an empty one so you can modify it. The time to create the record is only
// when you save a record that not empty to the database.
//
// If readOnly is true, then returned a record but only can read.
// For a read only record, you also need use ShapeRecord.Save to release it.
//
// Important:
//
//   - Once any modifications have been made to the returned record, you must save them
//     at the end; otherwise, the record will not be able to maintain data consistency
//     (only need to save at the last modification).
//
//   - Record of one shape can't be using by multiple threads. Therefore, you will
//     get blocking when a thread calling NewShapeRecord but there is still some
//     threads are using target shape.
//
//   - Calling ShapeRecord.Save to release the record.
func (l *LibraryDB) NewShapeRecord(name string, readOnly bool) (result *ShapeRecord, err error) {
	var exist bool
	var success bool

	releaseFunc, succ := l.sessions.Require(name)
	if !succ {
		return nil, fmt.Errorf("NewShapeRecord: %w", ErrDatabaseClosed)
	}

	defer func() {
		if !success {
			releaseFunc()
		}
	}()

	result = &ShapeRecord{
		db:          l.DB,
		name:        name,
		isReadOnly:  readOnly,
		releaseFunc: releaseFunc,
		maxLimit:    l.maxLimit,
	}

	err = l.bdb.View(func(tx *bbolt.Tx) error {
		exist = (tx.Bucket(DatabaseKeyShapeIndex).Get([]byte(name)) != nil)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("NewShapeRecord: %v", err)
	}
	if !exist {
		result.isEmpty = true
		result.isNew = true
		result.id = uuid.New()
		success = true
		return result, nil
	}

	gzippedGlobalData := l.Get(Sum(name, KeyGlobalData))
	globalData, err := utils.Ungzip(gzippedGlobalData)
	if err != nil {
		return nil, fmt.Errorf("NewShapeRecord: %v", err)
	}
	if err = result.decodeGlobalData(globalData); err != nil {
		return nil, fmt.Errorf("NewShapeRecord: %v", err)
	}

	latestShapeBytes := l.Get(Sum(name, KeyLatestShape))
	result.latestPayload, err = utils.Ungzip(latestShapeBytes)
	if err != nil {
		return nil, fmt.Errorf("NewShapeRecord: %v", err)
	}

	success = true
	return result, nil
}

// "encodeGlobalData" is an internal implement detail.
func (s *ShapeRecord) encodeGlobalData() []byte {
	globalData := bytes.NewBuffer(nil)

	// UUID
	globalData.Write(s.id[:])

	// Revision Unix Time
	{
		buf := bytes.NewBuffer(nil)

		for _, value := range s.revisionUnixTime {
			temp := make([]byte, 8)
			binary.LittleEndian.PutUint64(temp, uint64(value))
			buf.Write(temp)
		}

		globalData.Write(utils.Uint32Bytes(uint32(buf.Len())))
		globalData.Write(buf.Bytes())
	}

	// Barrier and Max limit
	{
		result := make([]byte, 12)

		binary.LittleEndian.PutUint32(result, uint32(s.barrierLeft))
		binary.LittleEndian.PutUint32(result[4:], uint32(s.barrierRight))
		binary.LittleEndian.PutUint32(result[8:], uint32(s.maxLimit))

		globalData.Write(result)
	}

	return globalData.Bytes()
}

// "decodeGlobalData" is an internal implement detail.
func (s *ShapeRecord) decodeGlobalData(globalData []byte) (err error) {
	// UUID
	{
		if len(globalData) < 16 {
			return fmt.Errorf("decodeGlobalData: UUID is broken (only get %d bytes but expected 16)", len(globalData))
		}
		s.id, err = uuid.FromBytes(globalData[:16])
		if err != nil {
			return fmt.Errorf("decodeGlobalData: %v", err)
		}
		globalData = globalData[16:]
	}

	// Revision Unix Time
	{
		if len(globalData) < 4 {
			return fmt.Errorf("decodeGlobalData: Revision time is broken")
		}
		length := binary.LittleEndian.Uint32(globalData)
		if uint32(len(globalData)-4) < length || length%8 != 0 {
			return fmt.Errorf("decodeGlobalData: Revision time is broken (claims %d bytes)", length)
		}

		payload := globalData[4 : 4+length]
		for len(payload) > 0 {
			s.revisionUnixTime = append(s.revisionUnixTime, int64(binary.LittleEndian.Uint64(payload)))
			payload = payload[8:]
		}
		globalData = globalData[4+length:]
	}

	// Barrier and Max limit
	{
		if len(globalData) < 12 {
			return fmt.Errorf("decodeGlobalData: Barrier and limit is broken (only get %d bytes but expected 12)", len(globalData))
		}
		s.barrierLeft = uint(binary.LittleEndian.Uint32(globalData))
		s.barrierRight = uint(binary.LittleEndian.Uint32(globalData[4:]))
		s.maxLimit = uint(binary.LittleEndian.Uint32(globalData[8:]))
	}

	if uint(len(s.revisionUnixTime)) != s.barrierRight-s.barrierLeft+1 {
		return fmt.Errorf(
			"decodeGlobalData: Found %d revision time but barrier is [%d, %d]",
			len(s.revisionUnixTime), s.barrierLeft, s.barrierRight,
		)
	}

	return nil
}

// DeleteShape delete the record of the shape whose name is name.
// If record is not exist, then do no operation.
//
// Time complexity: O(n).
// n is the revision count that this shape have.
func (l *LibraryDB) DeleteShape(name string) error {
	var success bool

	record, err := l.NewShapeRecord(name, false)
	if err != nil {
		return fmt.Errorf("DeleteShape: %v", err)
	}
	defer record.releaseFunc()

	if record.isEmpty {
		return nil
	}

	tran, err := l.OpenTransaction()
	if err != nil {
		return fmt.Errorf("DeleteShape: %v", err)
	}
	defer func() {
		if !success {
			_ = tran.Discard()
			return
		}
		_ = tran.Commit()
	}()

	// Global data
	err = tran.Delete(Sum(name, KeyGlobalData))
	if err != nil {
		return fmt.Errorf("DeleteShape: %v", err)
	}

	// Shape Index
	bucket := tran.(*transaction).tx.Bucket(DatabaseKeyShapeIndex)
	if bucket.Get([]byte(name)) != nil {
		err = tran.Put(
			DatabaseKeyShapeCount,
			utils.Uint32BinaryAdd(tran.Get(DatabaseKeyShapeCount), []byte{1, 0, 0, 0}, -1),
		)
		if err != nil {
			return fmt.Errorf("DeleteShape: %v", err)
		}
		err = bucket.Delete([]byte(name))
		if err != nil {
			return fmt.Errorf("DeleteShape: %v", err)
		}
	}

	// Latest Shape
	err = tran.Delete(Sum(name, KeyLatestShape))
	if err != nil {
		return fmt.Errorf("DeleteShape: %v", err)
	}

	// Each patch
	for i := record.barrierLeft; i < record.barrierRight; i++ {
		err = tran.Delete(IndexPatch(name, i))
		if err != nil {
			return fmt.Errorf("DeleteShape: %v", err)
		}
	}

	success = true
	return nil
}
