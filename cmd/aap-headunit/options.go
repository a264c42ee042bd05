package main

import (
	"flag"
	"fmt"
)

// Options holds the CLI flags for the aap-headunit demo binary.
type Options struct {
	// Listen is the TCP address the demo listens on in place of a real
	// USB accessory endpoint (see DESIGN.md).
	Listen string

	Make                    string
	Model                   string
	Year                    string
	HeadUnitMake            string
	HeadUnitModel           string
	HeadUnitSoftwareBuild   string
	HeadUnitSoftwareVersion string
}

// DefaultOptions returns Options with sensible defaults for local
// testing against a phone-side AAP client.
func DefaultOptions() Options {
	return Options{
		Listen:                  "127.0.0.1:5288",
		Make:                    "aapcore",
		Model:                   "Reference Head Unit",
		Year:                    "2026",
		HeadUnitMake:            "aapcore",
		HeadUnitModel:           "aap-headunit",
		HeadUnitSoftwareBuild:   "dev",
		HeadUnitSoftwareVersion: "0.1.0",
	}
}

// ParseFlags parses the standard aap-headunit flags and returns
// Options.
//
//	-listen  TCP address to listen on (default: 127.0.0.1:5288)
//	-make    Vehicle make advertised in service discovery
//	-model   Vehicle model advertised in service discovery
//	-year    Vehicle model year advertised in service discovery
func ParseFlags() Options {
	defaults := DefaultOptions()
	o := defaults

	flag.StringVar(&o.Listen, "listen", defaults.Listen, "TCP address to listen on")
	flag.StringVar(&o.Make, "make", defaults.Make, "vehicle make")
	flag.StringVar(&o.Model, "model", defaults.Model, "vehicle model")
	flag.StringVar(&o.Year, "year", defaults.Year, "vehicle model year")
	flag.Parse()

	return o
}

func (o Options) String() string {
	return fmt.Sprintf("%s %s (%s) listening on %s", o.Make, o.Model, o.Year, o.Listen)
}
