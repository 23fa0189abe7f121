// Command bcq evaluates arbitrary-precision arithmetic through bc.
package main

import (
	"os"

	"github.com/wagiedev/bc-go/internal/command"
)

func main() {
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
