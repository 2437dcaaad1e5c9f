// Command photoprot computes sunscreen photoprotection metrics from
// absorbance spectra.
//
// Usage:
//
//	photoprot [command] [flags]
//
// Examples:
//
//	photoprot ispf --input plates.csv
//	photoprot adjspf --input plates.csv --values 30 --batch true
//	photoprot protocol --pre pre.csv --post post.csv --spf 30 -o json
//	photoprot tables --list
package main

import (
	"fmt"
	"os"

	"github.com/santiagohigareda/photoprotection/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
