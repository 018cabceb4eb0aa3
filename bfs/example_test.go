package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/maze"
)

// ExampleShortestPath finds the fewest-move route around a wall.
//
//	A # . . .
//	. # . # .
//	. . . # B
func ExampleShortestPath() {
	g, err := maze.FromStrings([]string{
		"A#...",
		".#.#.",
		"...#B",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, found, err := bfs.ShortestPath(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(found, len(path), path)
	// Output:
	// true 10 DDRRUURRDD
}

// ExampleShortestPath_unreachable shows that a walled-off end is a normal result.
func ExampleShortestPath_unreachable() {
	g, _ := maze.FromStrings([]string{
		"A.#",
		".##",
		".#B",
	})
	path, found, err := bfs.ShortestPath(g)
	fmt.Println(path == nil, found, err)
	// Output:
	// true false <nil>
}

// ExampleSearch_depths prints every discovered cell with its distance from the start.
func ExampleSearch_depths() {
	g, _ := maze.FromStrings([]string{
		"A.",
		"#B",
	})
	res, err := bfs.Search(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range res.Order {
		d, _ := res.Distance(c)
		fmt.Println(c, d)
	}
	// Output:
	// (0,0) 0
	// (0,1) 1
	// (1,1) 2
}
