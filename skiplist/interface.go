package skiplist

import (
	"errors"
	"fmt"
)

type K = int64

// MaxLevels 為單一 skip list 可設定的最大層數
const MaxLevels = 32

var (
	ErrInvalidLevels      = errors.New("skiplist: invalid level count")
	ErrInvalidProbability = errors.New("skiplist: invalid promotion probability")
)

// Set 為整數 key 的有序集合，key 不可重複
type Set interface {
	// Insert 插入 key，若 key 已存在則不做任何事並回傳 false
	Insert(key K) bool
	// InsertAll 依序插入，回傳實際插入的數量
	InsertAll(keys []K) int
	Contains(key K) bool
	// Remove 刪除 key，key 不存在時回傳 false
	Remove(key K) bool
	// Render 由最高層到第 1 層輸出每層的 key
	Render() string
	Len() int
}

// Analyable 提供分析功能的介面
type Analyable interface {
	Set
	// Levels 回傳固定的層數（head 參與的層數）
	Levels() int
	GetHead() Nodelike
}

type Nodelike interface {
	GetKey() K
	// GetLevel 回傳節點所在的最高層 index（0 為最底層）
	GetLevel() int32
	GetNextAt(level int32) Nodelike
}

// ValidateParams 檢查建構參數
func ValidateParams(levels, probability int) error {
	if levels < 1 || levels > MaxLevels {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidLevels, levels, MaxLevels)
	}
	if probability < 0 || probability > 100 {
		return fmt.Errorf("%w: %d (want 0..100)", ErrInvalidProbability, probability)
	}
	return nil
}
