package engine

// Solve returns the optimal move sequence that carries n disks from rod A to
// rod C using rod B as the spare. The result always has 2^n - 1 moves; n <= 0
// yields an empty solution.
func Solve(n int) Solution {
	return SolveFrom(n, RodA, RodC, RodB)
}

// SolveFrom returns the optimal move sequence for n disks between arbitrary rods
func SolveFrom(n int, source, target, auxiliary Rod) Solution {
	if n <= 0 {
		return Solution{}
	}

	moves := make(Solution, 0, capacityFor(n))
	return solveHanoi(moves, n, source, target, auxiliary)
}

// solveHanoi appends the moves for n disks onto moves
func solveHanoi(moves Solution, n int, source, target, auxiliary Rod) Solution {
	if n == 0 {
		return moves
	}
	moves = solveHanoi(moves, n-1, source, auxiliary, target)
	moves = append(moves, Move{From: source, To: target})
	return solveHanoi(moves, n-1, auxiliary, target, source)
}

// MoveCount returns 2^n - 1, the length of an optimal solution
func MoveCount(n int) uint64 {
	if n <= 0 {
		return 0
	}
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(n)) - 1
}

// capacityFor sizes the move slice up front when the count fits in memory
func capacityFor(n int) int {
	if n > MaxDisks {
		return 0
	}
	return int(MoveCount(n))
}
