// Package config declares the command-line interface tree that kong parses.
package config

import "github.com/remote-input/hidinject/internal/cmd"

// Log holds logging flags shared by all commands.
type Log struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"HIDINJECT_LOG_LEVEL"`
	File    string `help:"Write logs to this file in addition to the console" env:"HIDINJECT_LOG_FILE"`
	RawFile string `help:"Hex dump every datagram to this file" env:"HIDINJECT_LOG_RAW_FILE"`
}

type CLI struct {
	ConfigFile string `name:"config" help:"Path to a JSON, YAML or TOML config file" env:"HIDINJECT_CONFIG"`
	Log        Log    `embed:"" prefix:"log."`

	Server cmd.Server        `cmd:"" help:"Receive input packets over UDP and inject them"`
	Send   cmd.Send          `cmd:"" help:"Send input packets to a running server"`
	Keys   cmd.Keys          `cmd:"" help:"List the key names the protocol understands"`
	Config cmd.ConfigCommand `cmd:"" help:"Manage configuration files"`
}
