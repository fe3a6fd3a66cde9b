// Package arena 以 slice 當作節點池實作 skip list，節點以 index 互相連結，
// 不使用指標。
package arena

import (
	"iter"
	"strconv"
	"strings"

	"github.com/Hakuto4838/levelskip/skiplist"
)

// head 固定在 slot 0。沒有任何節點會指回 head，所以 next 為 0 即代表 nil。
const (
	headIdx uint32 = 0
	nilIdx  uint32 = 0
)

type arenaNode struct {
	key    skiplist.K
	height uint8 // 節點參與的層數
	next   [skiplist.MaxLevels]uint32
}

type ArenaSkipList struct {
	nodes       []arenaNode
	free        []uint32 // 已刪除、可重用的 slot
	levels      int
	probability int
	src         skiplist.Source
	size        int
}

// NewArenaSkipList 建立空的 skip list。
// levels 為固定層數 (1..MaxLevels)，probability 為升層百分比 (0..100)，
// src 為 nil 時使用以時間為種子的亂數。
func NewArenaSkipList(levels, probability int, src skiplist.Source) (*ArenaSkipList, error) {
	if err := skiplist.ValidateParams(levels, probability); err != nil {
		return nil, err
	}
	if src == nil {
		src = skiplist.NewTimeSource()
	}
	sl := &ArenaSkipList{
		nodes:       make([]arenaNode, 1, 16),
		levels:      levels,
		probability: probability,
		src:         src,
	}
	sl.nodes[headIdx].height = uint8(levels)
	return sl, nil
}

// predecessors 回傳每層最後一個 key 小於目標的節點
func (sl *ArenaSkipList) predecessors(key skiplist.K) (prev [skiplist.MaxLevels]uint32) {
	cur := headIdx
	for h := sl.levels - 1; h >= 0; h-- {
		for nx := sl.nodes[cur].next[h]; nx != nilIdx && sl.nodes[nx].key < key; nx = sl.nodes[cur].next[h] {
			cur = nx
		}
		prev[h] = cur
	}
	return prev
}

func (sl *ArenaSkipList) alloc(key skiplist.K) uint32 {
	if n := len(sl.free); n > 0 {
		idx := sl.free[n-1]
		sl.free = sl.free[:n-1]
		sl.nodes[idx] = arenaNode{key: key}
		return idx
	}
	sl.nodes = append(sl.nodes, arenaNode{key: key})
	return uint32(len(sl.nodes) - 1)
}

func (sl *ArenaSkipList) link(idx, prev uint32, h int) {
	sl.nodes[idx].next[h] = sl.nodes[prev].next[h]
	sl.nodes[prev].next[h] = idx
}

// Insert 先接上第 0 層，之後每層以 probability% 的機率繼續升層，
// 第一次沒升層就停止。重複的 key 不插入。
func (sl *ArenaSkipList) Insert(key skiplist.K) bool {
	prev := sl.predecessors(key)
	if nx := sl.nodes[prev[0]].next[0]; nx != nilIdx && sl.nodes[nx].key == key {
		return false
	}

	idx := sl.alloc(key)
	sl.link(idx, prev[0], 0)
	lvl := 1
	for lvl < sl.levels && sl.src.Percent() < sl.probability {
		sl.link(idx, prev[lvl], lvl)
		lvl++
	}
	sl.nodes[idx].height = uint8(lvl)
	sl.size++
	return true
}

func (sl *ArenaSkipList) InsertAll(keys []skiplist.K) int {
	n := 0
	for _, k := range keys {
		if sl.Insert(k) {
			n++
		}
	}
	return n
}

func (sl *ArenaSkipList) Contains(key skiplist.K) bool {
	cur := headIdx
	for h := sl.levels - 1; h >= 0; h-- {
		for {
			nx := sl.nodes[cur].next[h]
			if nx == nilIdx || sl.nodes[nx].key > key {
				break
			}
			if sl.nodes[nx].key == key {
				return true
			}
			cur = nx
		}
	}
	return false
}

// Remove 逐層解除連結，全部層處理完才回收 slot
func (sl *ArenaSkipList) Remove(key skiplist.K) bool {
	if !sl.Contains(key) {
		return false
	}
	prev := sl.predecessors(key)
	target := sl.nodes[prev[0]].next[0]
	for h := 0; h < sl.levels; h++ {
		if nx := sl.nodes[prev[h]].next[h]; nx != nilIdx && sl.nodes[nx].key == key {
			sl.nodes[prev[h]].next[h] = sl.nodes[nx].next[h]
		}
	}
	sl.nodes[target] = arenaNode{}
	sl.free = append(sl.free, target)
	sl.size--
	return true
}

// Render 由最高層往下輸出，格式為 "[level: L] k1-->k2-->null"
func (sl *ArenaSkipList) Render() string {
	var sb strings.Builder
	for h := sl.levels; h > 0; h-- {
		sb.WriteString("[level: ")
		sb.WriteString(strconv.Itoa(h))
		sb.WriteString("] ")
		for cur := sl.nodes[headIdx].next[h-1]; cur != nilIdx; cur = sl.nodes[cur].next[h-1] {
			sb.WriteString(strconv.FormatInt(sl.nodes[cur].key, 10))
			sb.WriteString("-->")
		}
		sb.WriteString("null\n")
	}
	return sb.String()
}

func (sl *ArenaSkipList) String() string {
	return sl.Render()
}

// Copy 沿第 0 層走一次重建所有層的連結，回傳互不影響的副本。
// 副本不共用亂數來源；src 為 nil 時使用以時間為種子的亂數。
func (sl *ArenaSkipList) Copy(src skiplist.Source) *ArenaSkipList {
	if src == nil {
		src = skiplist.NewTimeSource()
	}
	cp := &ArenaSkipList{
		nodes:       make([]arenaNode, 1, sl.size+1),
		levels:      sl.levels,
		probability: sl.probability,
		src:         src,
		size:        sl.size,
	}
	cp.nodes[headIdx].height = uint8(sl.levels)

	var tails [skiplist.MaxLevels]uint32
	for cur := sl.nodes[headIdx].next[0]; cur != nilIdx; cur = sl.nodes[cur].next[0] {
		n := sl.nodes[cur]
		idx := uint32(len(cp.nodes))
		cp.nodes = append(cp.nodes, arenaNode{key: n.key, height: n.height})
		for h := 0; h < int(n.height); h++ {
			cp.nodes[tails[h]].next[h] = idx
			tails[h] = idx
		}
	}
	return cp
}

// All 依遞增順序走訪所有 key
func (sl *ArenaSkipList) All() iter.Seq[skiplist.K] {
	return func(yield func(skiplist.K) bool) {
		for cur := sl.nodes[headIdx].next[0]; cur != nilIdx; cur = sl.nodes[cur].next[0] {
			if !yield(sl.nodes[cur].key) {
				return
			}
		}
	}
}

func (sl *ArenaSkipList) Len() int { return sl.size }
func (sl *ArenaSkipList) Levels() int { return sl.levels }
func (sl *ArenaSkipList) Probability() int { return sl.probability }

func (sl *ArenaSkipList) GetHead() skiplist.Nodelike {
	return nodeRef{sl: sl, idx: headIdx}
}

// nodeRef 讓 arena 中的節點符合 Nodelike 介面
type nodeRef struct {
	sl  *ArenaSkipList
	idx uint32
}

func (n nodeRef) GetKey() skiplist.K {
	return n.sl.nodes[n.idx].key
}

func (n nodeRef) GetLevel() int32 {
	return int32(n.sl.nodes[n.idx].height) - 1
}

func (n nodeRef) GetNextAt(level int32) skiplist.Nodelike {
	nd := &n.sl.nodes[n.idx]
	if level < 0 || level >= int32(nd.height) || nd.next[level] == nilIdx {
		return nil
	}
	return nodeRef{sl: n.sl, idx: nd.next[level]}
}
