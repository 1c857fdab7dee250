//go:build windows

package main

import (
	"log/slog"
	"os"

	"github.com/remote-input/hidinject/internal/util"
)

// A double-clicked binary has no arguments; start the receiver.
func init() {
	if !util.IsRunFromGUI() {
		return
	}
	if len(os.Args) >= 2 && os.Args[1] == "server" {
		return
	}
	slog.Info("Detected GUI startup, running 'server'")
	slog.Warn("Run from a terminal for more options")
	os.Args = append([]string{os.Args[0], "server"}, os.Args[1:]...)
}
