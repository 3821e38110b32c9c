// Command validate provides a small CLI that validates problem text files
// in the ../problems directory. It checks:
//   - The size line and yard bounds
//   - One queue line per row with uniform length
//   - Container id range and uniqueness
//   - That every exit row receives the containers it can accept
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateProblem loads and validates a single problem file. It performs
// structural checks line by line so that error messages can point at the
// offending row and column.
func validateProblem(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	f, err := os.Open(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		result.Valid = false
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	size, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("First line must be the yard size: %v", err))
		return result
	}
	if size < 2 || size > 50 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Yard size must be between 2 and 50, got %d", size))
		return result
	}

	// Read the queue lines.
	queueLen := -1
	seen := map[int]int{}
	total := 0
	perExitRow := make([]int, size)
	for row := 0; row < size; row++ {
		if !scanner.Scan() {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Missing queue line for row %d", row))
			return result
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d has an empty queue", row))
			continue
		}
		if queueLen == -1 {
			queueLen = len(fields)
			if queueLen > size {
				result.Valid = false
				result.Errors = append(result.Errors, fmt.Sprintf("Queue length %d exceeds yard size %d", queueLen, size))
			}
		} else if len(fields) != queueLen {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Inconsistent queue length at row %d: expected %d, got %d", row, queueLen, len(fields)))
		}

		for col, field := range fields {
			id, err := strconv.Atoi(field)
			if err != nil {
				result.Valid = false
				result.Errors = append(result.Errors, fmt.Sprintf("Invalid container id %q at row %d position %d", field, row, col))
				continue
			}
			if id < 0 || id >= size*size {
				result.Valid = false
				result.Errors = append(result.Errors, fmt.Sprintf("Container id %d at row %d out of range [0, %d)", id, row, size*size))
				continue
			}
			if prev, dup := seen[id]; dup {
				result.Valid = false
				result.Errors = append(result.Errors, fmt.Sprintf("Duplicate container id %d at rows %d and %d", id, prev, row))
				continue
			}
			seen[id] = row
			perExitRow[id/size]++
			total++
		}
	}

	// An exit row can accept at most one container per id slot.
	for r, count := range perExitRow {
		if count > size {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Exit row %d receives %d containers, more than %d", r, count, size))
		}
	}

	if result.Valid {
		crossRow := 0
		for id, row := range seen {
			if id/size != row {
				crossRow++
			}
		}
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Yard: %dx%d", size, size))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Containers: %d (%d per queue)", total, queueLen))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Cross-row containers: %d", crossRow))
	}

	return result
}

// main scans ../problems for *.txt files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	problemDir := "../problems"
	if len(os.Args) > 1 {
		problemDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(problemDir, "*.txt"))
	if err != nil {
		fmt.Printf("Error finding problem files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateProblem(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All problems are valid!")
	} else {
		fmt.Println("❌ Some problems have errors")
		os.Exit(1)
	}
}
