package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/avamsi/ergo/assert"
	"github.com/olekukonko/tablewriter"

	"github.com/Hakuto4838/levelskip/skiplist"
	"github.com/Hakuto4838/levelskip/skiplist/analyTool"
	"github.com/Hakuto4838/levelskip/skiplist/arena"
	"github.com/Hakuto4838/levelskip/skiplist/basic"
)

func parseKeys(s string) ([]skiplist.K, error) {
	var keys []skiplist.K
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func testOne(name string, sl skiplist.Analyable, probe []skiplist.K) {
	fmt.Printf("=== %s ===\n", name)
	fmt.Print(sl.Render())
	fmt.Println()
	analyTool.PrintSkipList(os.Stdout, sl, 35)
	if err := analyTool.CheckStruct(sl); err != nil {
		log.Printf("%s: broken structure: %v", name, err)
	}
	fmt.Printf("avg steps: %.3f\n\n", analyTool.AverageSteps(sl, probe))
}

func main() {
	var keysFlag string
	var levels int
	var p int
	var seed int64

	flag.StringVar(&keysFlag, "keys", "3,6,7,9,12,19,17,26,21,25", "comma separated keys to insert")
	flag.IntVar(&levels, "levels", 4, "fixed level count")
	flag.IntVar(&p, "p", 50, "promotion percentage")
	flag.Int64Var(&seed, "seed", 42, "seed for the promotion source")
	flag.Parse()

	keys, err := parseKeys(keysFlag)
	if err != nil {
		log.Fatalf("invalid -keys: %v", err)
	}

	// 兩個實作使用相同種子，結構應完全相同
	arenaSL := assert.Ok(arena.NewArenaSkipList(levels, p, skiplist.NewRandSource(seed)))
	basicSL := assert.Ok(basic.NewBasicSkipList(levels, p, skiplist.NewRandSource(seed)))
	fmt.Printf("inserted %d/%d keys\n\n", arenaSL.InsertAll(keys), len(keys))
	basicSL.InsertAll(keys)

	testOne("arena", arenaSL, keys)
	testOne("basic", basicSL, keys)
	if arenaSL.Render() != basicSL.Render() {
		log.Printf("arena and basic layouts differ")
	}

	arenaCounts := analyTool.CountLevel(arenaSL)
	basicCounts := analyTool.CountLevel(basicSL)
	rows := make([][]string, 0, levels)
	for i := levels - 1; i >= 0; i-- {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(arenaCounts[i]),
			strconv.Itoa(basicCounts[i]),
		})
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Level", "Arena", "Basic"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.AppendBulk(rows)
	table.Render()
}
