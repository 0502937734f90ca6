package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDiskCount = errors.New("invalid disk count")
	ErrBoardCorrupted   = errors.New("board corrupted")
)

// InitialRods returns the canonical starting board for n disks, top first:
// rod A holds 1..n and rods B and C are empty
func InitialRods(n int) [NumRods][]Disk {
	var rods [NumRods][]Disk
	for i := range rods {
		rods[i] = []Disk{}
	}
	for d := 1; d <= n; d++ {
		rods[RodA] = append(rods[RodA], d)
	}
	return rods
}

// ValidateBoard checks that rods (top first) hold every disk 1..n exactly once
// and that no disk rests on a smaller one
func ValidateBoard(rods [NumRods][]Disk, n int) error {
	seen := make([]bool, n+1)
	count := 0

	for r, rod := range rods {
		for i, d := range rod {
			if d < 1 || d > n {
				return fmt.Errorf("%w: disk %d on rod %s is outside 1..%d", ErrBoardCorrupted, d, Rod(r), n)
			}
			if seen[d] {
				return fmt.Errorf("%w: disk %d appears more than once", ErrBoardCorrupted, d)
			}
			seen[d] = true
			count++

			if i > 0 && rod[i-1] > d {
				return fmt.Errorf("%w: disk %d rests on smaller disk on rod %s", ErrBoardCorrupted, rod[i-1], Rod(r))
			}
		}
	}

	if count != n {
		return fmt.Errorf("%w: expected %d disks, found %d", ErrBoardCorrupted, n, count)
	}
	return nil
}

// ValidateDiskCount rejects counts outside MinDisks..MaxDisks
func ValidateDiskCount(n int) error {
	if n < MinDisks || n > MaxDisks {
		return fmt.Errorf("%w: must be between %d and %d, got %d", ErrInvalidDiskCount, MinDisks, MaxDisks, n)
	}
	return nil
}

// topFirst converts a bottom-first stack into a fresh top-first slice
func topFirst(stack []Disk) []Disk {
	out := make([]Disk, len(stack))
	for i, d := range stack {
		out[len(stack)-1-i] = d
	}
	return out
}

// bottomFirst converts a top-first rod into a fresh bottom-first stack
func bottomFirst(rod []Disk) []Disk {
	return topFirst(rod)
}
