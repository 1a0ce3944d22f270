// Package cli provides version information and shared helpers for the nexus
// command-line tools.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"
)

// Version information for the nexus toolchain.
const (
	Version   = "0.1.0"
	BuildDate = "2026-08-30"
	CommitSHA = "unknown" // Set during build.
)

// VersionInfo contains version and build information.
type VersionInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	CommitSHA string `json:"commit_sha"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Arch      string `json:"arch"`
}

// GetVersionInfo returns structured version information.
func GetVersionInfo() *VersionInfo {
	return &VersionInfo{
		Version:   Version,
		BuildDate: BuildDate,
		CommitSHA: CommitSHA,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// PrintVersion prints version information in a consistent format.
func PrintVersion(toolName string, jsonOutput bool) {
	info := GetVersionInfo()

	if jsonOutput {
		data, err := json.MarshalIndent(map[string]interface{}{
			"tool":         toolName,
			"version_info": info,
		}, "", "  ")
		if err == nil {
			fmt.Println(string(data))
			return
		}
		fmt.Fprintf(os.Stderr, "Error: Failed to marshal version info to JSON: %v\n", err)
	}

	fmt.Printf("%s v%s\n", toolName, info.Version)
	fmt.Printf("Build Date: %s\n", info.BuildDate)
	if info.CommitSHA != "unknown" && info.CommitSHA != "" {
		fmt.Printf("Commit: %s\n", info.CommitSHA)
	}
	fmt.Printf("Go Version: %s\n", info.GoVersion)
	fmt.Printf("Platform: %s/%s\n", info.Platform, info.Arch)
}

// ExitWithError prints an error message and exits with code 1.
func ExitWithError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// Logger provides leveled logging for the CLI tools.
type Logger struct {
	Verbose   bool
	DebugMode bool
}

// NewLogger creates a new logger instance.
func NewLogger(verbose, debug bool) *Logger {
	return &Logger{
		Verbose:   verbose,
		DebugMode: debug,
	}
}

// Info logs an info message when verbose output is enabled.
func (l *Logger) Info(format string, args ...interface{}) {
	if l.Verbose {
		fmt.Printf("[INFO] %s: %s\n", time.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
	}
}

// Debug logs a debug message when debug mode is enabled.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.DebugMode {
		fmt.Printf("[DEBUG] %s: %s\n", time.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
	}
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[WARN] %s: %s\n", time.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[ERROR] %s: %s\n", time.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
}
