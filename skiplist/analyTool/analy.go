package analyTool

import (
	"errors"
	"fmt"
	"io"

	"github.com/RoaringBitmap/roaring/roaring64"

	"github.com/Hakuto4838/levelskip/skiplist"
)

// FindStep 計算找到指定 key 的總步數和各層步數
func FindStep(sl skiplist.Analyable, key skiplist.K) (step int, level []int) {
	cur := sl.GetHead()
	if cur == nil {
		return 0, []int{}
	}

	maxLevel := sl.Levels() - 1
	stepsPerLevel := make([]int, maxLevel+1)
	totalSteps := 0

	// 從最高層開始搜尋
	for h := maxLevel; h >= 0; h-- {
		levelSteps := 0
		for {
			nextNode := cur.GetNextAt(int32(h))
			if nextNode == nil || nextNode.GetKey() >= key {
				break
			}
			cur = nextNode
			levelSteps++
		}

		if nextNode := cur.GetNextAt(int32(h)); nextNode != nil && nextNode.GetKey() == key {
			levelSteps++ // 加上最後一步
			stepsPerLevel[h] = levelSteps
			totalSteps += levelSteps
			return totalSteps, stepsPerLevel
		}

		stepsPerLevel[h] = levelSteps
		totalSteps += levelSteps + 1 // 加上向下移動
	}

	// 沒找到，回傳搜尋過程中的總步數
	return totalSteps, stepsPerLevel
}

// AverageSteps 計算一組 key 的平均搜尋步數
func AverageSteps(sl skiplist.Analyable, keys []skiplist.K) float64 {
	if len(keys) == 0 {
		return 0
	}
	total := 0
	for _, k := range keys {
		s, _ := FindStep(sl, k)
		total += s
	}
	return float64(total) / float64(len(keys))
}

// CountLevel 回傳每層的節點數量（不含 head）
func CountLevel(sl skiplist.Analyable) []int {
	levelCounts := make([]int, sl.Levels())
	head := sl.GetHead()
	if head == nil {
		return levelCounts
	}
	for current := head.GetNextAt(0); current != nil; current = current.GetNextAt(0) {
		for i := 0; i <= int(current.GetLevel()) && i < len(levelCounts); i++ {
			levelCounts[i]++
		}
	}
	return levelCounts
}

// CheckStruct 檢查 skip list 的結構：
// head 參與所有層、每層 key 嚴格遞增、上層的 key 必定出現在下一層、
// 第 0 層節點數等於 Len()
func CheckStruct(sl skiplist.Analyable) error {
	head := sl.GetHead()
	if head == nil {
		return errors.New("nil head")
	}
	levels := sl.Levels()
	if int(head.GetLevel()) != levels-1 {
		return fmt.Errorf("head level %d, want %d", head.GetLevel(), levels-1)
	}

	perLevel := make([]*roaring64.Bitmap, levels)
	for h := 0; h < levels; h++ {
		bm := roaring64.New()
		first := true
		var last skiplist.K
		for node := head.GetNextAt(int32(h)); node != nil; node = node.GetNextAt(int32(h)) {
			k := node.GetKey()
			if !first && k <= last {
				return fmt.Errorf("level %d: key %d after %d", h, k, last)
			}
			if int(node.GetLevel()) < h {
				return fmt.Errorf("level %d: key %d has level %d", h, k, node.GetLevel())
			}
			bm.Add(uint64(k))
			first, last = false, k
		}
		if h > 0 {
			if extra := roaring64.AndNot(bm, perLevel[h-1]); !extra.IsEmpty() {
				return fmt.Errorf("level %d: key %d missing from level %d", h, int64(extra.Minimum()), h-1)
			}
		}
		perLevel[h] = bm
	}

	if n := perLevel[0].GetCardinality(); n != uint64(sl.Len()) {
		return fmt.Errorf("level 0 holds %d keys, Len() = %d", n, sl.Len())
	}
	return nil
}

// PrintSkipList 以欄位對齊的方式打印每個節點的高度
func PrintSkipList(w io.Writer, sl skiplist.Analyable, maxNodes int) {
	head := sl.GetHead()
	if head == nil {
		fmt.Fprintln(w, "Skip list 為空")
		return
	}

	output := make([]string, sl.Levels())
	for i := range output {
		output[i] = fmt.Sprintf("level %d : ", i)
	}

	count := 0
	for node := head.GetNextAt(0); node != nil && count < maxNodes; node = node.GetNextAt(0) {
		lv := int(node.GetLevel())
		for i := range output {
			if i <= lv {
				output[i] += fmt.Sprintf("%3d ->", node.GetKey())
			} else {
				output[i] += "    ->"
			}
		}
		count++
	}

	for i := len(output) - 1; i >= 0; i-- {
		fmt.Fprintln(w, output[i])
	}
}
