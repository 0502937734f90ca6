// Package validate checks puzzle preset JSON files. It checks:
//   - JSON structure, rejecting unknown fields
//   - Required fields and disk count bounds
//   - Autoplay interval range
//   - Message templates (move_status needs two %d verbs)
//   - Solvability: the generated solution replays to a solved board
package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/mcp-training/hanoi/game/engine"
)

// Result captures the outcome of validating a single file.
// If Valid is true, Messages holds informational lines; otherwise it
// accumulates the problems that were found.
type Result struct {
	File     string
	Valid    bool
	Messages []string
}

func (r *Result) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Messages = append(r.Messages, fmt.Sprintf(format, args...))
}

func (r *Result) info(format string, args ...interface{}) {
	r.Messages = append(r.Messages, "✓ "+fmt.Sprintf(format, args...))
}

// File loads and validates a single preset file
func File(filePath string) Result {
	result := Result{
		File:     filepath.Base(filePath),
		Valid:    true,
		Messages: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	var config engine.GameConfig
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&config); err != nil {
		result.fail("Invalid JSON: %v", err)
		return result
	}

	if config.Name == "" {
		result.fail("name is required")
	}
	if config.Description == "" {
		result.fail("description is required")
	}

	if err := engine.ValidateDiskCount(config.NumDisks); err != nil {
		result.fail("num_disks: %v", err)
	}

	if config.AutoplayIntervalMs != 0 &&
		(config.AutoplayIntervalMs < engine.MinAutoplayIntervalMs || config.AutoplayIntervalMs > engine.MaxAutoplayIntervalMs) {
		result.fail("autoplay_interval_ms must be between %d and %d, got %d",
			engine.MinAutoplayIntervalMs, engine.MaxAutoplayIntervalMs, config.AutoplayIntervalMs)
	}

	if err := engine.ValidateMoveStatus(config.Messages.MoveStatus); err != nil {
		result.fail("%v", err)
	}

	if !result.Valid {
		return result
	}

	// Anything ValidateGameConfig still rejects was missed above
	if err := engine.ValidateGameConfig(&config); err != nil {
		result.fail("%v", err)
		return result
	}

	if err := checkSolvable(&config); err != nil {
		result.fail("Solution replay failed: %v", err)
		return result
	}

	result.info("Name: %s", config.Name)
	result.info("Disks: %d", config.NumDisks)
	result.info("Moves: %d", engine.MoveCount(config.NumDisks))
	if config.AutoplayIntervalMs != 0 {
		result.info("Autoplay: %dms", config.AutoplayIntervalMs)
	} else {
		result.info("Autoplay: default (%dms)", engine.DefaultAutoplayIntervalMs)
	}

	return result
}

// checkSolvable replays the full solution and verifies the final board
func checkSolvable(config *engine.GameConfig) error {
	eng, err := engine.NewEngine(config)
	if err != nil {
		return err
	}
	if err := eng.Seek(eng.TotalMoves()); err != nil {
		return err
	}
	if !eng.IsComplete() {
		return fmt.Errorf("board not solved after %d moves", eng.Position())
	}
	return eng.Verify()
}

// Dir validates every *.json file in dir
func Dir(dir string) ([]Result, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("finding config files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no config files found in %s", dir)
	}

	results := make([]Result, 0, len(files))
	for _, file := range files {
		results = append(results, File(file))
	}
	return results, nil
}

// Report prints a concise report and returns whether every file was valid
func Report(w io.Writer, results []Result) bool {
	allValid := true
	for _, result := range results {
		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(w, "✅ VALID")
			for _, info := range result.Messages {
				fmt.Fprintln(w, "  "+info)
			}
			continue
		}

		fmt.Fprintln(w, "❌ INVALID")
		allValid = false
		for _, msg := range result.Messages {
			if !strings.HasPrefix(msg, "✓") {
				fmt.Fprintln(w, "  ❌ "+msg)
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Fprintln(w, "✅ All configurations are valid!")
	} else {
		fmt.Fprintln(w, "❌ Some configurations have errors")
	}
	return allValid
}
