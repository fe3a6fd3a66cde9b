package skiplist

import (
	"math/rand"
	"time"
)

// Source 提供升層判定用的亂數，每次回傳 [0,100) 的均勻整數
type Source interface {
	Percent() int
}

// RandSource 以種子固定的 *rand.Rand 產生亂數
type RandSource struct {
	rand *rand.Rand
}

func NewRandSource(seed int64) *RandSource {
	return &RandSource{rand: rand.New(rand.NewSource(seed))}
}

// NewTimeSource 以當前時間為種子
func NewTimeSource() *RandSource {
	return NewRandSource(time.Now().UnixNano())
}

func (s *RandSource) Percent() int {
	return s.rand.Intn(100)
}

// SequenceSource 依序循環回傳預先給定的值，測試時用來決定節點的層數
type SequenceSource struct {
	draws []int
	pos   int
	drawn int
}

// NewSequenceSource 建立固定序列，值會被限制在 [0,100)；空序列永遠回傳 0
func NewSequenceSource(draws ...int) *SequenceSource {
	cp := make([]int, len(draws))
	for i, d := range draws {
		cp[i] = min(max(d, 0), 99)
	}
	return &SequenceSource{draws: cp}
}

func (s *SequenceSource) Percent() int {
	if len(s.draws) == 0 {
		s.drawn++
		return 0
	}
	d := s.draws[s.pos]
	s.pos = (s.pos + 1) % len(s.draws)
	s.drawn++
	return d
}

// Drawn 回傳累計抽取次數
func (s *SequenceSource) Drawn() int { return s.drawn }
