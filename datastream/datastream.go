package datastream

import (
	"fmt"

	"github.com/Hakuto4838/levelskip/skiplist"
)

// OperationType 表示操作種類
type OperationType uint8

const (
	OpQuery OperationType = iota
	OpInsert
	OpDelete
)

func (t OperationType) String() string {
	switch t {
	case OpQuery:
		return "Query"
	case OpInsert:
		return "Insert"
	case OpDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// Operation 表示一筆操作
type Operation struct {
	Type OperationType
	Key  skiplist.K
}

func (op Operation) String() string {
	return fmt.Sprintf("%s(%d)", op.Type, op.Key)
}

// SequenceModel 以既有的 Operation 序列提供順序重播
type SequenceModel struct {
	ops []Operation
	pos int
}

// NewSequenceModelFromOps 由外部供給的操作序列建立模型
func NewSequenceModelFromOps(ops []Operation) *SequenceModel {
	cp := make([]Operation, len(ops))
	copy(cp, ops)
	return &SequenceModel{ops: cp}
}

// Next 回傳下一筆操作，若結束則回傳零值與 false
func (m *SequenceModel) Next() (Operation, bool) {
	if m.pos >= len(m.ops) {
		return Operation{}, false
	}
	op := m.ops[m.pos]
	m.pos++
	return op, true
}

// NextN 回傳接下來 n 筆（或直到結束）的操作
func (m *SequenceModel) NextN(n int) []Operation {
	if n <= 0 || m.pos >= len(m.ops) {
		return nil
	}
	end := min(m.pos+n, len(m.ops))
	out := make([]Operation, end-m.pos)
	copy(out, m.ops[m.pos:end])
	m.pos = end
	return out
}

// Reset 游標重置到起點
func (m *SequenceModel) Reset() { m.pos = 0 }

// Len 回傳序列總長度
func (m *SequenceModel) Len() int { return len(m.ops) }

// ReplayStats 記錄重播結果
type ReplayStats struct {
	Queries  int
	Hits     int
	Inserted int
	Removed  int
}

// Replay 將整個序列套用到 set 上
func Replay(set skiplist.Set, m *SequenceModel) ReplayStats {
	var st ReplayStats
	for {
		op, ok := m.Next()
		if !ok {
			return st
		}
		switch op.Type {
		case OpQuery:
			st.Queries++
			if set.Contains(op.Key) {
				st.Hits++
			}
		case OpInsert:
			if set.Insert(op.Key) {
				st.Inserted++
			}
		case OpDelete:
			if set.Remove(op.Key) {
				st.Removed++
			}
		}
	}
}
