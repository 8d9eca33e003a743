package main

import (
	"flag"
	"fmt"
	"os"

	safefmt "github.com/jdibling/safefmt/cmd/safefmt/impl"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: "+safefmt.ShortUsage)
		flag.PrintDefaults()
	}
	os.Exit(safefmt.Main(flag.CommandLine, os.Args[1:]))
}
