// Package main provides the voicecheck CLI, which scores local audio files
// with the same detector the API uses.
//
// Usage:
//
//	voicecheck score <file.mp3> [--json | --yaml] [--features]
package main

import (
	"fmt"
	"os"

	"voicedetect/cmd/voicecheck/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
