// SPDX-License-Identifier: MIT

// Command matdiff reports whether two flattened matrices differ.
//
//	matdiff [--eps E] [--indices] [--shape] PREV NEXT
//
// PREV and NEXT are YAML or JSON files holding a flat list of numbers or a
// list of equal-length rows. --shape compares them as matrices, so a
// change of shape differs. Exit status is 0 when the matrices are the
// same, 1 when they differ and 2 on usage or load errors.
package main

import (
	"context"
	"os"

	"github.com/katalvlaran/matdiff/internal/log"
)

func main() {
	log.InitLogger(os.Stderr)
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}
