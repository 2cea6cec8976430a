// Command tabula runs keyword and fuzzy queries over rows loaded from a
// YAML or CSV file
package main

import (
	"fmt"
	"os"

	"github.com/kode4food/tabula/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "tabula:", err)
		os.Exit(1)
	}
}
