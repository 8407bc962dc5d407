package main

import (
	"fmt"
	"houseprice/cmd"
	"os"
)

func main() {
	if err := cmd.Start(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "houseprice: %s\n", err)
		os.Exit(1)
	}
}
