// Command analyze prints quick, human-readable heuristics about problem
// files in the project's problems directory. It summarizes yard dimensions,
// container counts, how many containers arrive in the wrong intake row for
// their exit row, and how many queued containers sit in front of one that is
// needed earlier (a lower bound on the kicks the cranes will have to make).
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harborsim/craneyard/yard/problem"
)

func main() {
	dir := "problems"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil || len(files) == 0 {
		fmt.Printf("No problem files found in %s\n", dir)
		os.Exit(1)
	}

	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		analyzeProblem(file)
	}
}

func analyzeProblem(path string) {
	p, err := problem.ParseFile(path)
	if err != nil {
		fmt.Printf("Error reading problem: %v\n", err)
		return
	}

	n := p.Size
	total := p.Total()
	fmt.Printf("Yard: %d x %d\n", n, n)
	fmt.Printf("Containers: %d\n", total)
	fmt.Printf("Queue length: %d per row\n", len(p.Queues[0]))

	// Containers whose exit row differs from the intake row they arrive on.
	// Each of these must be carried across rows instead of straight along one.
	misplaced := 0
	for r, queue := range p.Queues {
		for _, id := range queue {
			if id/n != r {
				misplaced++
			}
		}
	}
	fmt.Printf("Cross-row containers: %d of %d\n", misplaced, total)

	// Queued containers standing in front of one that is needed earlier.
	// Every such blocker forces at least one kick onto the board.
	blockers := 0
	for _, queue := range p.Queues {
		for i, id := range queue {
			for _, later := range queue[i+1:] {
				if deliveryRank(later, n) < deliveryRank(id, n) {
					blockers++
					break
				}
			}
		}
	}
	fmt.Printf("Estimated kicks needed: %d\n", blockers)

	// Per exit row, how deep into the queues the last needed container sits.
	depths := make([]int, n)
	for _, queue := range p.Queues {
		for depth, id := range queue {
			exit := id / n
			if depth > depths[exit] {
				depths[exit] = depth
			}
		}
	}
	fmt.Printf("Deepest needed container per exit row: %v\n", depths)

	if misplaced == 0 && blockers == 0 {
		fmt.Printf("✅ Already in delivery order: every queue feeds its own exit row\n")
	} else if blockers > total/2 {
		fmt.Printf("⚠️  WARNING: more than half the containers block an earlier delivery\n")
	}
}

// deliveryRank orders containers by exit row, then by id within the row,
// which is the order the exits will accept them.
func deliveryRank(id, n int) int {
	return (id/n)*n*n + id
}
