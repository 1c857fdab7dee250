package inject

import "time"

// Config selects and configures an injection backend.
type Config struct {
	Backend        string        `help:"Injection backend (robotgo, viiper, dryrun)" default:"robotgo" env:"HIDINJECT_BACKEND"`
	ViiperAddr     string        `help:"VIIPER API server address" default:"localhost:3242" env:"HIDINJECT_VIIPER_ADDR"`
	ViiperPassword string        `help:"VIIPER API password; empty disables authentication" env:"HIDINJECT_VIIPER_PASSWORD"`
	ViiperBus      uint32        `help:"Existing VIIPER bus to attach devices to; 0 creates a new bus" default:"0" env:"HIDINJECT_VIIPER_BUS"`
	ViiperTimeout  time.Duration `help:"VIIPER API operation timeout" default:"5s" env:"HIDINJECT_VIIPER_TIMEOUT"`

	// Pad asks the backend to also attach a gamepad. Set by the server when
	// the pad listener is enabled.
	Pad bool `kong:"-"`
}
