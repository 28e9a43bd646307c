package server

// HttpConfig holds the listen settings of the standalone server.
type HttpConfig struct {
	// Host is the interface to listen on.
	Host string `conf:"host"`

	// Port is the port to listen on.
	Port int `conf:"port"`

	// H2c enables the HTTP/2 cleartext upgrade path.
	H2c bool `conf:"h2c"`
}
