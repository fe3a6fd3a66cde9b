package basic

import (
	"fmt"
	"strings"

	"github.com/Hakuto4838/levelskip/skiplist"
)

type basicNode struct {
	key  skiplist.K
	next []*basicNode
}

// BasicSkipList 以指標串接各層，層數與升層機率在建構時固定
type BasicSkipList struct {
	head        *basicNode
	levels      int
	probability int
	src         skiplist.Source
	size        int
}

func NewBasicSkipList(levels, probability int, src skiplist.Source) (*BasicSkipList, error) {
	if err := skiplist.ValidateParams(levels, probability); err != nil {
		return nil, err
	}
	if src == nil {
		src = skiplist.NewTimeSource()
	}
	return &BasicSkipList{
		head:        newNode(0, levels),
		levels:      levels,
		probability: probability,
		src:         src,
	}, nil
}

func newNode(key skiplist.K, height int) *basicNode {
	return &basicNode{
		key:  key,
		next: make([]*basicNode, height),
	}
}

// beforeNodes 每層各自從 head 開始找最後一個小於 key 的節點
func (sl *BasicSkipList) beforeNodes(key skiplist.K) []*basicNode {
	prev := make([]*basicNode, sl.levels)
	for h := 0; h < sl.levels; h++ {
		curr := sl.head
		for curr.next[h] != nil && curr.next[h].key < key {
			curr = curr.next[h]
		}
		prev[h] = curr
	}
	return prev
}

func (sl *BasicSkipList) Insert(key skiplist.K) bool {
	prev := sl.beforeNodes(key)
	if nx := prev[0].next[0]; nx != nil && nx.key == key {
		return false
	}

	nd := newNode(key, 1)
	nd.next[0] = prev[0].next[0]
	prev[0].next[0] = nd
	for h := 1; h < sl.levels && sl.src.Percent() < sl.probability; h++ {
		nd.next = append(nd.next, prev[h].next[h])
		prev[h].next[h] = nd
	}
	sl.size++
	return true
}

func (sl *BasicSkipList) InsertAll(keys []skiplist.K) int {
	n := 0
	for _, k := range keys {
		if sl.Insert(k) {
			n++
		}
	}
	return n
}

func (sl *BasicSkipList) Contains(key skiplist.K) bool {
	cur := sl.head
	for h := sl.levels - 1; h >= 0; h-- {
		for cur.next[h] != nil && cur.next[h].key < key {
			cur = cur.next[h]
		}
		if cur.next[h] != nil && cur.next[h].key == key {
			return true
		}
	}
	return false
}

func (sl *BasicSkipList) Remove(key skiplist.K) bool {
	if !sl.Contains(key) {
		return false
	}
	for h, curr := range sl.beforeNodes(key) {
		if curr.next[h] != nil && curr.next[h].key == key {
			curr.next[h] = curr.next[h].next[h]
		}
	}
	sl.size--
	return true
}

func (sl *BasicSkipList) Render() string {
	var sb strings.Builder
	for h := sl.levels; h > 0; h-- {
		fmt.Fprintf(&sb, "[level: %d] ", h)
		for curr := sl.head.next[h-1]; curr != nil; curr = curr.next[h-1] {
			fmt.Fprintf(&sb, "%d-->", curr.key)
		}
		sb.WriteString("null\n")
	}
	return sb.String()
}

// Copy 先複製第 0 層的所有節點，再逐層重走一次原本的串列把上層連結接回新節點
func (sl *BasicSkipList) Copy(src skiplist.Source) *BasicSkipList {
	if src == nil {
		src = skiplist.NewTimeSource()
	}
	cp := &BasicSkipList{
		head:        newNode(0, sl.levels),
		levels:      sl.levels,
		probability: sl.probability,
		src:         src,
		size:        sl.size,
	}

	clones := make(map[*basicNode]*basicNode, sl.size)
	tail := cp.head
	for curr := sl.head.next[0]; curr != nil; curr = curr.next[0] {
		nd := newNode(curr.key, len(curr.next))
		clones[curr] = nd
		tail.next[0] = nd
		tail = nd
	}
	for h := 1; h < sl.levels; h++ {
		tail = cp.head
		for curr := sl.head.next[h]; curr != nil; curr = curr.next[h] {
			tail.next[h] = clones[curr]
			tail = clones[curr]
		}
	}
	return cp
}

func (sl *BasicSkipList) Len() int {
	return sl.size
}

func (sl *BasicSkipList) Levels() int {
	return sl.levels
}

func (sl *BasicSkipList) GetHead() skiplist.Nodelike {
	return sl.head
}

func (nd *basicNode) GetKey() skiplist.K {
	return nd.key
}

func (nd *basicNode) GetLevel() int32 {
	return int32(len(nd.next) - 1)
}

func (nd *basicNode) GetNextAt(level int32) skiplist.Nodelike {
	if level < 0 || level >= int32(len(nd.next)) {
		return nil
	}
	if nd.next[level] == nil {
		return nil
	}
	return nd.next[level]
}
