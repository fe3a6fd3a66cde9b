package main

import (
	"slices"
	"testing"

	"github.com/Hakuto4838/levelskip/datastream"
)

func TestParsePercents(t *testing.T) {
	got, err := parsePercents(" 25, 50,,100")
	if err != nil || !slices.Equal(got, []int{25, 50, 100}) {
		t.Errorf("parsePercents = %v, %v", got, err)
	}
	for _, bad := range []string{"", "abc", "101", "-1"} {
		if _, err := parsePercents(bad); err == nil {
			t.Errorf("parsePercents(%q) error = nil", bad)
		}
	}
}

func TestParseImpls(t *testing.T) {
	if got := parseImpls("all"); !slices.Equal(got, []string{"arena", "basic"}) {
		t.Errorf("parseImpls(all) = %v", got)
	}
	if got := parseImpls("Basic, basic,nope"); !slices.Equal(got, []string{"basic"}) {
		t.Errorf("parseImpls = %v", got)
	}
}

func TestBenchmarkImpl(t *testing.T) {
	ops := datastream.NewUniformDataGenerator(200, 3).GenerateWorkload(2000, 0.1)
	a := benchmarkImpl(ops, nil, "arena", 8, 50, 2, 3)
	b := benchmarkImpl(ops, nil, "basic", 8, 50, 2, 3)
	if a.check != "ok" || b.check != "ok" {
		t.Fatalf("check = %s / %s", a.check, b.check)
	}
	if a.size != b.size {
		t.Errorf("final size arena=%d basic=%d", a.size, b.size)
	}
}

func BenchmarkReplay(b *testing.B) {
	ops := datastream.NewUniformDataGenerator(10000, 1).GenerateWorkload(100000, 0.1)
	for range b.N {
		benchmarkImpl(ops, nil, "arena", 16, 50, 1, 1)
	}
}
