// Package problem models the puzzle input: the yard size and the container
// ids entering each row's intake queue, in arrival order.
package problem

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Problem is one puzzle instance. Queues[r] lists the containers entering
// row r's queue in order (index 0 enters first). All rows hold the same
// number of containers, between one and Size.
type Problem struct {
	Size   int     `json:"size"`
	Queues [][]int `json:"queues"`
}

// New builds a validated problem from per-row queues.
func New(queues [][]int) (*Problem, error) {
	p := &Problem{Size: len(queues), Queues: queues}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the structural rules: a positive size, uniform row
// lengths no longer than the size, and unique container ids below size².
func (p *Problem) Validate() error {
	n := p.Size
	if n <= 0 {
		return fmt.Errorf("size must be positive, got %d", n)
	}
	if len(p.Queues) != n {
		return fmt.Errorf("expected %d queue rows, got %d", n, len(p.Queues))
	}
	rowLen := len(p.Queues[0])
	if rowLen < 1 || rowLen > n {
		return fmt.Errorf("queue rows must hold between 1 and %d containers, row 0 holds %d", n, rowLen)
	}
	seen := make(map[int]bool, n*rowLen)
	for r, row := range p.Queues {
		if len(row) != rowLen {
			return fmt.Errorf("queue rows must have equal length: row %d has %d, row 0 has %d", r, len(row), rowLen)
		}
		for _, id := range row {
			if id < 0 || id >= n*n {
				return fmt.Errorf("container id %d out of range [0, %d)", id, n*n)
			}
			if seen[id] {
				return fmt.Errorf("container id %d appears more than once", id)
			}
			seen[id] = true
		}
	}
	return nil
}

// Total returns the number of containers in the problem.
func (p *Problem) Total() int {
	return p.Size * len(p.Queues[0])
}

// Parse reads a problem in its text form: the size N on the first line,
// followed by N lines of whitespace-separated container ids.
func Parse(r io.Reader) (*Problem, error) {
	scanner := bufio.NewScanner(r)
	line, err := nextLine(scanner)
	if err != nil {
		return nil, fmt.Errorf("reading size: %w", err)
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return nil, fmt.Errorf("invalid size %q: %w", line, err)
	}

	queues := make([][]int, 0, n)
	for r := 0; r < n; r++ {
		line, err := nextLine(scanner)
		if err != nil {
			return nil, fmt.Errorf("reading queue row %d: %w", r, err)
		}
		fields := strings.Fields(line)
		row := make([]int, 0, len(fields))
		for _, f := range fields {
			id, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("queue row %d: invalid container id %q: %w", r, f, err)
			}
			row = append(row, id)
		}
		queues = append(queues, row)
	}
	return New(queues)
}

// ParseFile reads a problem from a file.
func ParseFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Format renders the problem in the text form accepted by Parse.
func (p *Problem) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", p.Size)
	for _, row := range p.Queues {
		for i, id := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(id))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// nextLine returns the next non-empty line.
func nextLine(scanner *bufio.Scanner) (string, error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.ErrUnexpectedEOF
}
