package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/avamsi/ergo/assert"
	"github.com/olekukonko/tablewriter"

	"github.com/Hakuto4838/levelskip/datastream"
	"github.com/Hakuto4838/levelskip/skiplist"
	"github.com/Hakuto4838/levelskip/skiplist/analyTool"
	"github.com/Hakuto4838/levelskip/skiplist/arena"
	"github.com/Hakuto4838/levelskip/skiplist/basic"
)

func main() {
	// Input: either provide -file, or provide -out and generation params
	var file string
	var out string
	var n int
	var k int
	var seed int64
	var removeRatio float64

	var impls string
	var probs string
	var levels int
	var runs int

	flag.StringVar(&file, "file", "", "existing bench file (SLOPS001 format)")
	flag.StringVar(&out, "out", "", "output path to write generated bench file")
	flag.IntVar(&n, "n", 10000, "key range [0,n) for the uniform generator")
	flag.IntVar(&k, "k", 100000, "number of operations to generate")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "seed for generators/structures")
	flag.Float64Var(&removeRatio, "removeRatio", 0.1, "ratio of remove operations on live keys")

	flag.StringVar(&impls, "impl", "all", "implementations to run: all or comma list (arena,basic)")
	flag.StringVar(&probs, "p", "25,50", "comma list of promotion percentages")
	flag.IntVar(&levels, "levels", 16, "fixed level count")
	flag.IntVar(&runs, "runs", 5, "how many times to repeat each benchmark")
	flag.Parse()

	if runs < 1 {
		log.Fatalf("invalid -runs: %d", runs)
	}
	if err := skiplist.ValidateParams(levels, 0); err != nil {
		log.Fatalf("invalid -levels: %v", err)
	}

	var ops []datastream.Operation
	if file != "" {
		ops = assert.Ok(datastream.ReadBenchFile(file))
		fmt.Printf("bench_file: %s\n", file)
	} else {
		if n <= 0 || k < 0 {
			log.Fatalf("invalid -n or -k: n=%d k=%d", n, k)
		}
		ops = datastream.NewUniformDataGenerator(n, seed).GenerateWorkload(k, removeRatio)
		if out != "" {
			if err := datastream.WriteBenchFile(out, ops); err != nil {
				log.Fatalf("write bench file: %v", err)
			}
			fmt.Printf("generated bench_file: %s\n", out)
		}
	}

	percents, err := parsePercents(probs)
	if err != nil {
		log.Fatalf("invalid -p: %v", err)
	}
	toRun := parseImpls(impls)
	fmt.Printf("ops: %d, levels: %d\n", len(ops), levels)
	fmt.Printf("implementations to test: %s\n", strings.Join(toRun, ","))
	fmt.Println(strings.Repeat("=", 80))

	queryKeys := make([]skiplist.K, 0, len(ops))
	for _, op := range ops {
		if op.Type == datastream.OpQuery {
			queryKeys = append(queryKeys, op.Key)
		}
	}

	rows := make([][]string, 0, len(toRun)*len(percents))
	for _, impl := range toRun {
		for _, p := range percents {
			fmt.Printf("benchmarking %s p=%d...\n", impl, p)
			stats := benchmarkImpl(ops, queryKeys, impl, levels, p, runs, seed)
			thr := float64(len(ops)) / (stats.avgMs / 1000.0)
			rows = append(rows, []string{
				impl,
				strconv.Itoa(p),
				strconv.Itoa(runs),
				fmt.Sprintf("%.3f", stats.avgMs),
				fmt.Sprintf("%.3f", stats.minMs),
				fmt.Sprintf("%.3f", stats.maxMs),
				fmt.Sprintf("%.2f", thr),
				strconv.Itoa(stats.size),
				fmt.Sprintf("%.3f", stats.avgSteps),
				stats.check,
			})
		}
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Impl", "P(%)", "Runs", "Avg(ms)", "Min(ms)", "Max(ms)", "Ops/s", "Len", "AvgSteps", "Check"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

type benchStats struct {
	avgMs    float64
	minMs    float64
	maxMs    float64
	size     int
	avgSteps float64 // 最後一次執行後的結構
	check    string
}

func benchmarkImpl(ops []datastream.Operation, queryKeys []skiplist.K, impl string, levels, p, runs int, seed int64) benchStats {
	durations := make([]float64, 0, runs)
	var last skiplist.Analyable
	for i := 0; i < runs; i++ {
		sl := newImpl(impl, levels, p, seed)
		start := time.Now()
		datastream.Replay(sl, datastream.NewSequenceModelFromOps(ops))
		durations = append(durations, float64(time.Since(start).Microseconds())/1000.0)
		last = sl
	}
	sort.Float64s(durations)
	sum := 0.0
	for _, v := range durations {
		sum += v
	}

	check := "ok"
	if err := analyTool.CheckStruct(last); err != nil {
		log.Printf("%s p=%d: broken structure: %v", impl, p, err)
		check = "FAIL"
	}
	return benchStats{
		avgMs:    sum / float64(len(durations)),
		minMs:    durations[0],
		maxMs:    durations[len(durations)-1],
		size:     last.Len(),
		avgSteps: analyTool.AverageSteps(last, queryKeys),
		check:    check,
	}
}

func newImpl(impl string, levels, p int, seed int64) skiplist.Analyable {
	src := skiplist.NewRandSource(seed)
	switch impl {
	case "arena":
		return assert.Ok(arena.NewArenaSkipList(levels, p, src))
	case "basic":
		return assert.Ok(basic.NewBasicSkipList(levels, p, src))
	default:
		log.Fatalf("unknown -impl: %s", impl)
		return nil
	}
}

func parseImpls(s string) []string {
	if s == "" || s == "all" {
		return []string{"arena", "basic"}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	seen := map[string]bool{}
	for _, p := range parts {
		t := strings.TrimSpace(strings.ToLower(p))
		if t == "" || seen[t] {
			continue
		}
		switch t {
		case "arena", "basic":
			out = append(out, t)
			seen[t] = true
		}
	}
	if len(out) == 0 {
		return []string{"arena", "basic"}
	}
	return out
}

func parsePercents(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		p, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		if p < 0 || p > 100 {
			return nil, fmt.Errorf("%d out of range 0..100", p)
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no percentages in %q", s)
	}
	return out, nil
}
