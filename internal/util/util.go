//go:build !windows

// Package util holds platform helpers for console handling.
package util

// IsRunFromGUI reports whether the process was started by double-clicking
// it. Only Windows can tell.
func IsRunFromGUI() bool { return false }

// HideConsoleWindow is a no-op off Windows.
func HideConsoleWindow() {}
