package ptrie_test

import (
	"fmt"
	"os"
	"slices"

	"github.com/aglyzov/go-ptrie/ptrie"
)

func Example() {
	trie, err := ptrie.New(
		ptrie.KV[int]{Key: "hello", Val: 10},
		ptrie.KV[int]{Key: "hell", Val: 20},
		ptrie.KV[int]{Key: "help", Val: 30},
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(slices.Sorted(trie.Values("hel", ptrie.Prefix)))
	fmt.Println(slices.Collect(trie.Values("hell", ptrie.Exact)))
	fmt.Println(slices.Collect(trie.Values("no", ptrie.Prefix)))

	// Output:
	// [10 20 30]
	// [20]
	// []
}

func ExampleTrie_Add() {
	t1, _ := ptrie.New[string]()
	t2, _ := t1.Add("Go", "gopher")

	fmt.Println(slices.Collect(t1.Values("go", ptrie.Exact)))
	fmt.Println(slices.Collect(t2.Values("go", ptrie.Exact)))

	// Output:
	// []
	// [gopher]
}

func ExampleTrie_Dump() {
	trie, _ := ptrie.New(
		ptrie.KV[int]{Key: "hello", Val: 10},
		ptrie.KV[int]{Key: "help", Val: 20},
	)

	_ = trie.Dump(os.Stdout)

	// Output:
	// hel:[]
	// -lo:[10]
	// -p:[20]
}

func ExampleNode_Add() {
	node := ptrie.NewNode("hello", 10)
	node, _ = node.Add("help", 20)

	node.Traverse(0, func(depth int, prefix string, values []int) {
		fmt.Println(depth, prefix, values)
	})

	// Output:
	// 0 hel []
	// 1 lo [10]
	// 1 p [20]
}
