// Package config provides configuration management for the Towers of Hanoi player.
//
// The config package handles:
//   - Loading puzzle presets from JSON files
//   - Preset validation and caching
//   - Default preset selection
//   - Process settings from the environment
//
// Preset Format:
//
// Presets are stored as JSON files in the configs directory. Each preset
// defines the disk count, the autoplay interval and the status messages shown
// to the renderer:
//
//	{
//	  "name": "Classic",
//	  "description": "Three disks, the textbook puzzle",
//	  "num_disks": 3,
//	  "autoplay_interval_ms": 300,
//	  "messages": {"move_status": "Move %d of %d", "complete": "Done"}
//	}
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	preset, err := manager.LoadConfig("classic")
//	presets, err := manager.ListConfigs()
//
// Settings:
//
// LoadSettings reads HANOI_* and NGROK_* variables. A .env file in the
// working directory is honored when the caller loads it first.
package config
