// cmd/lfx2-install/main.go
package main

import (
	"fmt"
	"os"

	"github.com/latencyflex/lfx2-install/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
