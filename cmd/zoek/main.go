// zoek is a terminal client for the Rechtspraak.nl open-data API:
// search with the same filters as the web form, page through results,
// and read a judgment as Markdown.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
