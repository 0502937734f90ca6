package engine

import "fmt"

// Advance applies the move at the cursor and moves the cursor forward.
// At the end of the solution it is a no-op reporting StepAlreadyComplete.
func (e *GameEngine) Advance() (StepOutcome, error) {
	e.ensureSolution()

	if e.position >= len(e.solution) {
		e.message = e.config.Messages.Complete
		return StepAlreadyComplete, nil
	}

	move := e.solution[e.position]
	if err := e.transfer(move); err != nil {
		return "", fmt.Errorf("advance move %d (%s): %w", e.position+1, move, err)
	}
	e.position++
	e.message = e.statusMessage()

	return StepApplied, nil
}

// Retreat moves the cursor back and undoes the move it lands on.
// At the start of the solution it is a no-op reporting StepAlreadyAtStart.
func (e *GameEngine) Retreat() (StepOutcome, error) {
	e.ensureSolution()

	if e.position == 0 {
		e.message = e.config.Messages.AtStart
		return StepAlreadyAtStart, nil
	}

	e.position--
	move := e.solution[e.position]
	if err := e.transfer(move.Reverse()); err != nil {
		e.position++
		return "", fmt.Errorf("retreat move %d (%s): %w", e.position, move, err)
	}
	e.message = e.statusMessage()

	return StepApplied, nil
}

// Seek steps the cursor one move at a time until it reaches position
func (e *GameEngine) Seek(position int) error {
	total := e.TotalMoves()
	if position < 0 || position > total {
		return fmt.Errorf("position must be between 0 and %d, got %d", total, position)
	}

	for e.position < position {
		if _, err := e.Advance(); err != nil {
			return err
		}
	}
	for e.position > position {
		if _, err := e.Retreat(); err != nil {
			return err
		}
	}
	return nil
}

// transfer pops the top disk of m.From and pushes it onto m.To
func (e *GameEngine) transfer(m Move) error {
	if !m.From.Valid() || !m.To.Valid() || m.From == m.To {
		return fmt.Errorf("%w: illegal move %s", ErrBoardCorrupted, m)
	}

	src := e.stacks[m.From]
	if len(src) == 0 {
		return fmt.Errorf("%w: rod %s is empty", ErrBoardCorrupted, m.From)
	}
	disk := src[len(src)-1]

	dst := e.stacks[m.To]
	if len(dst) > 0 && dst[len(dst)-1] < disk {
		return fmt.Errorf("%w: disk %d cannot rest on disk %d", ErrBoardCorrupted, disk, dst[len(dst)-1])
	}

	e.stacks[m.From] = src[:len(src)-1]
	e.stacks[m.To] = append(dst, disk)
	return nil
}

// statusMessage renders the "Move p of total" line
func (e *GameEngine) statusMessage() string {
	return fmt.Sprintf(e.config.Messages.MoveStatus, e.position, len(e.solution))
}
