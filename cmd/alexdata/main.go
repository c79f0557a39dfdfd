// SPDX-License-Identifier: MIT

// Command alexdata computes braid kernel invariants: strand tracking,
// closure classes, the reduced Burau matrix, the Alexander polynomial and
// the Alexander data, for single kernels or YAML job files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
