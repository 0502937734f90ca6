// Package autoplay drives a playback cursor on a fixed interval.
//
// A Player repeatedly calls a step function until the step reports that the
// solution is complete, the step fails, Stop is called or the parent context
// is cancelled. The player knows nothing about the puzzle; the caller's step
// function is responsible for locking and advancing the engine.
//
// Usage:
//
//	player := autoplay.NewPlayer()
//	err := player.Start(ctx, 300*time.Millisecond, func(ctx context.Context) (bool, error) {
//		mu.Lock()
//		defer mu.Unlock()
//		if ctx.Err() != nil {
//			return true, nil
//		}
//		if _, err := eng.Advance(); err != nil {
//			return true, err
//		}
//		return eng.IsComplete(), nil
//	})
//
//	// later
//	player.Stop()
package autoplay
