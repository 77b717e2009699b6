// Command errgate hosts the reporting gate.
//
//	errgate serve  --config errgate.yaml
//	errgate status --config errgate.yaml
//	errgate ping   --config errgate.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
