package search_test

import (
	"fmt"

	"github.com/jahodfra/IkeaTrainTrack/piece"
	"github.com/jahodfra/IkeaTrainTrack/search"
)

// ExampleEnumerate lists the only two loops eight turn pieces can build.
func ExampleEnumerate() {
	paths, err := search.Enumerate(piece.Inventory{Turns: 8})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(paths)
	// Output:
	// [LLLLLLLL RRRRRRRR]
}

// ExampleForward reports the size of the reachable set with a progress hook.
func ExampleForward() {
	var last search.Progress
	r, err := search.Forward(piece.Inventory{Turns: 8},
		search.WithOnStep(func(p search.Progress) { last = p }))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(r.Len(), len(r.Accepting), last.Step)
	// Output:
	// 49 1 8
}
