package rbtree

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// The benchmarks compare the red-black tree against two other ordered set
// implementations: a B-tree and a left-leaning red-black tree.

const benchKeys = 10000

func benchData() []int {
	r := rand.New(rand.NewSource(seed))
	return r.Perm(benchKeys)
}

func presized() *Tree[int] {
	cfg := OrderedConfig[int]()
	cfg.Capacity = benchKeys
	tree, _ := NewWithConfig(cfg)
	return tree
}

func BenchmarkInsert(b *testing.B) {
	data := benchData()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := presized()
		for _, k := range data {
			tree.Insert(k)
		}
	}
}

func BenchmarkInsertBTree(b *testing.B) {
	data := benchData()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := btree.NewOrderedG[int](32)
		for _, k := range data {
			tree.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkInsertLLRB(b *testing.B) {
	data := benchData()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := llrb.New()
		for _, k := range data {
			tree.ReplaceOrInsert(llrb.Int(k))
		}
	}
}

func BenchmarkExists(b *testing.B) {
	data := benchData()
	tree := New[int]()
	for _, k := range data {
		tree.Insert(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Exists(data[i%benchKeys])
	}
}

func BenchmarkExistsBTree(b *testing.B) {
	data := benchData()
	tree := btree.NewOrderedG[int](32)
	for _, k := range data {
		tree.ReplaceOrInsert(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Has(data[i%benchKeys])
	}
}

func BenchmarkExistsLLRB(b *testing.B) {
	data := benchData()
	tree := llrb.New()
	for _, k := range data {
		tree.ReplaceOrInsert(llrb.Int(k))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Has(llrb.Int(data[i%benchKeys]))
	}
}

func BenchmarkInsertDelete(b *testing.B) {
	data := benchData()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := presized()
		for _, k := range data {
			tree.Insert(k)
		}
		for _, k := range data {
			tree.Delete(k)
		}
	}
}

func BenchmarkInsertDeleteBTree(b *testing.B) {
	data := benchData()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := btree.NewOrderedG[int](32)
		for _, k := range data {
			tree.ReplaceOrInsert(k)
		}
		for _, k := range data {
			tree.Delete(k)
		}
	}
}
