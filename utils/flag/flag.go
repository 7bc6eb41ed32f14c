/*
flag Package set up cli flags shared across services

Usage:

	Flags listed in this package are shared across boundaries and service-agnostic
	For service dependent flags please define in their respective package
*/

package flag

import (
	"flag"
)

const (
	APIServer = "api_server"
)

var (
	IsDevelopment bool
	ServiceName   string
	ByPassAuth    bool
)

func init() {
	flag.BoolVar(&IsDevelopment, "dev", true, "set to true if the current run is for development. default value is true")
	flag.StringVar(&ServiceName, "service", APIServer, "name of the running service")
	flag.BoolVar(&ByPassAuth, "no_auth", false, "skip JWT verification and trust the 'sub' header, development only")
}

// Parse must be called from main before any flag value is read. Tests
// never call it, the testing package owns the command line there.
func Parse() {
	flag.Parse()
}
