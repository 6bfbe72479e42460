package segtree

import (
	"math/rand"
	"testing"
)

func benchTree(b *testing.B, n int) *Tree[int64] {
	b.Helper()
	r := rand.New(rand.NewSource(1))
	values := make([]int64, n)
	for i := range values {
		values[i] = r.Int63n(1000)
	}
	tree, err := New(values)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	return tree
}

func BenchmarkQuery(b *testing.B) {
	tree := benchTree(b, 1<<16)
	r := rand.New(rand.NewSource(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lo := r.Intn(1 << 16)
		hi := lo + r.Intn(1<<16-lo)
		if _, err := tree.Query(lo, hi); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkQueryFullRange(b *testing.B) {
	tree := benchTree(b, 1<<20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tree.Query(0, 1<<20-1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParallelQueryFullRange(b *testing.B) {
	tree := benchTree(b, 1<<20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tree.ParallelQuery(0, 1<<20-1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUpdate(b *testing.B) {
	tree := benchTree(b, 1<<16)
	r := rand.New(rand.NewSource(3))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := tree.Update(r.Intn(1<<16), int64(i)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBatchUpdate64(b *testing.B) {
	tree := benchTree(b, 1<<16)
	r := rand.New(rand.NewSource(4))
	entries := make([]Entry[int64], 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := range entries {
			entries[j] = Entry[int64]{Index: r.Intn(1 << 16), Value: int64(j)}
		}
		if err := tree.BatchUpdate(entries); err != nil {
			b.Fatal(err)
		}
	}
}
