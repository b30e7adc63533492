// Command boarding decodes boarding-pass seat strings and reports seat ids.
//
//	boarding decode passes.txt
//	boarding seat --on-error skip passes.txt
//	cat passes.txt | boarding decode --format json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
