// Command shrimpcore is a UCI-speaking chess engine front-end, reading
// commands from stdin and writing protocol responses to stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/stockshrimp/shrimpcore/uci"
)

var version = flag.Bool("version", false, "print version and exit")

func main() {
	flag.Parse()
	if *version {
		fmt.Printf("shrimpcore, build with %v, running on %v\n", runtime.Version(), runtime.GOARCH)
		return
	}
	uci.Loop(os.Stdin, os.Stdout)
}
