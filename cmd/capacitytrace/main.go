// Command capacitytrace replays a YAML script of vector operations and
// prints the size and capacity after every step.
//
//	capacitytrace run script.yaml --values --verbose
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
