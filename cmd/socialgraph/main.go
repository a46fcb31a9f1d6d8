// Command socialgraph loads a friendship graph and reports its unique
// connection count, friend chains and centrality rankings.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
