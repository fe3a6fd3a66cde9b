package arena_test

import (
	"fmt"

	"github.com/Hakuto4838/levelskip/skiplist"
	"github.com/Hakuto4838/levelskip/skiplist/arena"
)

func ExampleArenaSkipList_Render() {
	sl, err := arena.NewArenaSkipList(3, 50, skiplist.NewSequenceSource(10, 10, 90, 10, 90))
	if err != nil {
		panic(err)
	}
	sl.InsertAll([]skiplist.K{5, 3, 7})
	fmt.Print(sl.Render())
	// Output:
	// [level: 3] 5-->null
	// [level: 2] 5-->7-->null
	// [level: 1] 3-->5-->7-->null
}

func ExampleArenaSkipList_Remove() {
	sl, _ := arena.NewArenaSkipList(4, 50, skiplist.NewRandSource(42))
	sl.InsertAll([]skiplist.K{3, 6, 7, 9, 12, 19, 17, 26, 21, 25})
	fmt.Println(sl.Contains(19), sl.Contains(15))
	fmt.Println(sl.Remove(19), sl.Contains(19), sl.Remove(19))
	// Output:
	// true false
	// true false false
}
