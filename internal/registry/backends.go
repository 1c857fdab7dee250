// Package registry links every injection backend into the binary.
package registry

import (
	_ "github.com/remote-input/hidinject/inject/dryrun"  // Register dryrun backend
	_ "github.com/remote-input/hidinject/inject/robotgo" // Register robotgo backend
	_ "github.com/remote-input/hidinject/inject/viiper"  // Register viiper backend
)
