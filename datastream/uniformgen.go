package datastream

import (
	"math/rand"

	"github.com/RoaringBitmap/roaring/roaring64"

	"github.com/Hakuto4838/levelskip/skiplist"
)

// 不存在的 key 有 missQueryRatio 的機率產生查詢，其餘產生插入
const missQueryRatio = 0.2

// UniformDataGenerator 產生 [0,n) 之間平均分布的 key
type UniformDataGenerator struct {
	n   int
	rng *rand.Rand
}

func NewUniformDataGenerator(n int, seed int64) *UniformDataGenerator {
	return &UniformDataGenerator{
		n:   max(n, 1),
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Next 產生一個 key
func (u *UniformDataGenerator) Next() skiplist.K {
	return skiplist.K(u.rng.Intn(u.n))
}

// GenerateSequence 產生指定長度的 key 序列
func (u *UniformDataGenerator) GenerateSequence(seqLen int) []skiplist.K {
	seq := make([]skiplist.K, seqLen)
	for i := range seq {
		seq[i] = u.Next()
	}
	return seq
}

// Keys 回傳 0..n-1 打亂後的排列，每個 key 只出現一次
func (u *UniformDataGenerator) Keys() []skiplist.K {
	keys := make([]skiplist.K, u.n)
	for i, p := range u.rng.Perm(u.n) {
		keys[i] = skiplist.K(p)
	}
	return keys
}

// GenerateWorkload 產生 k 筆合法的操作：
//   - key 不存在時：插入，或以 missQueryRatio 的機率查詢（必定 miss）
//   - key 存在時：removeRatio 的機率刪除，其餘查詢
//
// 因此序列中不會出現重複插入，也不會刪除不存在的 key。
func (u *UniformDataGenerator) GenerateWorkload(k int, removeRatio float64) []Operation {
	live := roaring64.New()
	ops := make([]Operation, 0, k)
	for i := 0; i < k; i++ {
		key := u.Next()
		r := u.rng.Float64()
		var op OperationType
		if !live.Contains(uint64(key)) {
			if r < missQueryRatio {
				op = OpQuery
			} else {
				op = OpInsert
				live.Add(uint64(key))
			}
		} else {
			if r < removeRatio {
				op = OpDelete
				live.Remove(uint64(key))
			} else {
				op = OpQuery
			}
		}
		ops = append(ops, Operation{Type: op, Key: key})
	}
	return ops
}
