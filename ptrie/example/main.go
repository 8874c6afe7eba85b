package main

import (
	"fmt"
	"os"

	"github.com/aglyzov/go-ptrie/ptrie"
)

func main() {
	var (
		trie = &ptrie.Trie[int]{}
		err  error
	)

	for i, word := range []string{"c", "a1", "a2", "a3", "a22", "bb", "A1"} {
		if trie, err = trie.Add(word, i); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	_ = trie.Dump(os.Stdout)

	fmt.Println("------")

	for val := range trie.Values("a", ptrie.Prefix) {
		fmt.Printf("%v\n", val)
	}

	fmt.Println("------")

	for val := range trie.Values("A2", ptrie.Exact) {
		fmt.Printf("%v\n", val)
	}
}
