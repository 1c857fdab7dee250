package udp

// ServerConfig represents the UDP listener configuration.
type ServerConfig struct {
	Addr       string `help:"UDP listen address for input packets" default:"127.0.0.1:9999" env:"HIDINJECT_UDP_ADDR"`
	ReadBuffer int    `help:"Socket receive buffer size in bytes; 0 keeps the OS default" default:"0" env:"HIDINJECT_UDP_READ_BUFFER"`
}

// PadConfig represents the optional gamepad listener. It shares the
// ReadBuffer setting of the main listener.
type PadConfig struct {
	Addr string `help:"UDP listen address for gamepad packets, e.g. 127.0.0.1:9998; empty disables the gamepad listener" env:"HIDINJECT_PAD_ADDR"`
}
