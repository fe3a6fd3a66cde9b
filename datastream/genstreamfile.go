package datastream

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/mmap"

	"github.com/Hakuto4838/levelskip/skiplist"
)

// 檔案格式（LittleEndian）：
// [8]byte  Magic: "SLOPS001"
// uint16   Version: 1
// uint16   Reserved: 0
// uint64   OpCount
// 重複 OpCount 次：
//   uint8   OperationType (0=Query,1=Insert,2=Delete)
//   int64   Key

var (
	benchMagic   = [8]byte{'S', 'L', 'O', 'P', 'S', '0', '0', '1'}
	benchVersion = uint16(1)
)

// WriteBenchFile 將操作序列寫成 bench 檔
func WriteBenchFile(filename string, ops []Operation) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if _, err := w.Write(benchMagic[:]); err != nil {
		return err
	}
	header := []any{benchVersion, uint16(0), uint64(len(ops))}
	for _, v := range header {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	for _, op := range ops {
		if err := w.WriteByte(byte(op.Type)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, int64(op.Key)); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return file.Close()
}

// ReadBenchFile 以 mmap 讀取 bench 檔
func ReadBenchFile(filename string) ([]Operation, error) {
	ra, err := mmap.Open(filename)
	if err != nil {
		return nil, err
	}
	defer ra.Close()

	ops, err := decodeBench(bufio.NewReader(io.NewSectionReader(ra, 0, int64(ra.Len()))))
	if err != nil {
		return nil, fmt.Errorf("read bench file %s: %w", filename, err)
	}
	return ops, nil
}

func decodeBench(r *bufio.Reader) ([]Operation, error) {
	var magic [8]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, err
	}
	if magic != benchMagic {
		return nil, fmt.Errorf("invalid magic: %q", magic)
	}
	var ver, reserved uint16
	if err := binary.Read(r, binary.LittleEndian, &ver); err != nil {
		return nil, err
	}
	if ver != benchVersion {
		return nil, fmt.Errorf("unsupported version: %d", ver)
	}
	if err := binary.Read(r, binary.LittleEndian, &reserved); err != nil {
		return nil, err
	}

	var opCount uint64
	if err := binary.Read(r, binary.LittleEndian, &opCount); err != nil {
		return nil, err
	}
	ops := make([]Operation, 0, min(opCount, 1<<20))
	for i := uint64(0); i < opCount; i++ {
		t, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("op %d: %w", i, io.ErrUnexpectedEOF)
		}
		if OperationType(t) > OpDelete {
			return nil, fmt.Errorf("op %d: unknown operation type %d", i, t)
		}
		var key int64
		if err := binary.Read(r, binary.LittleEndian, &key); err != nil {
			return nil, fmt.Errorf("op %d: %w", i, io.ErrUnexpectedEOF)
		}
		ops = append(ops, Operation{Type: OperationType(t), Key: skiplist.K(key)})
	}
	return ops, nil
}
