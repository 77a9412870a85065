// archidl derives an Interface Description (IDL) from the Rust source of an
// on-chain program. Single binary, zero config — parse, extract, emit JSON.
package main

import (
	"os"

	"github.com/hoffmabc/arch-idl/cmd/archidl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
