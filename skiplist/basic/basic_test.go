package basic

import (
	"os"
	"testing"

	"github.com/Hakuto4838/levelskip/skiplist"
	"github.com/Hakuto4838/levelskip/skiplist/analyTool"
)

func TestBasicSkipListInterface(t *testing.T) {
	var _ skiplist.Set = (*BasicSkipList)(nil)
	var _ skiplist.Analyable = (*BasicSkipList)(nil)
	var _ skiplist.Nodelike = (*basicNode)(nil)
}

func TestBasicSkipListBasic(t *testing.T) {
	sl, err := NewBasicSkipList(4, 50, skiplist.NewRandSource(42))
	if err != nil {
		t.Fatal(err)
	}
	sl.InsertAll([]skiplist.K{3, 6, 7, 9, 12, 19, 17, 26, 21, 25})

	if !sl.Contains(19) {
		t.Error("Contains(19) = false, want true")
	}
	if sl.Contains(15) {
		t.Error("Contains(15) = true, want false")
	}
	if !sl.Remove(19) || sl.Contains(19) || sl.Remove(19) {
		t.Error("Remove(19) sequence mismatch")
	}
	if err := analyTool.CheckStruct(sl); err != nil {
		t.Errorf("CheckStruct: %v", err)
	}

	analyTool.PrintSkipList(os.Stdout, sl, 10)
}

func TestBasicRender(t *testing.T) {
	sl, _ := NewBasicSkipList(3, 50, skiplist.NewSequenceSource(10, 10, 90, 10, 90))
	sl.InsertAll([]skiplist.K{5, 3, 7})
	want := "[level: 3] 5-->null\n" +
		"[level: 2] 5-->7-->null\n" +
		"[level: 1] 3-->5-->7-->null\n"
	if got := sl.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestBasicCopy(t *testing.T) {
	sl, _ := NewBasicSkipList(4, 50, skiplist.NewRandSource(9))
	for k := skiplist.K(0); k < 200; k += 2 {
		sl.Insert(k)
	}
	cp := sl.Copy(skiplist.NewRandSource(10))
	if cp.Render() != sl.Render() {
		t.Fatal("copy renders differently")
	}
	if err := analyTool.CheckStruct(cp); err != nil {
		t.Fatalf("CheckStruct(copy): %v", err)
	}

	for k := skiplist.K(0); k < 200; k += 4 {
		cp.Remove(k)
	}
	cp.Insert(1)
	for k := skiplist.K(0); k < 200; k += 2 {
		if !sl.Contains(k) {
			t.Fatalf("original lost key %d after mutating the copy", k)
		}
	}
	if sl.Contains(1) {
		t.Error("original sees key inserted into the copy")
	}
	if err := analyTool.CheckStruct(sl); err != nil {
		t.Errorf("CheckStruct(original): %v", err)
	}
}

func TestBasicInvalidParams(t *testing.T) {
	if _, err := NewBasicSkipList(0, 50, nil); err == nil {
		t.Error("NewBasicSkipList(0, 50) error = nil")
	}
	if _, err := NewBasicSkipList(4, 120, nil); err == nil {
		t.Error("NewBasicSkipList(4, 120) error = nil")
	}
}
