package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/stampname/cmd/stampname"
	"github.com/arthur-debert/stampname/internal/version"
)

func main() {
	rootCmd := stampname.NewRootCmd(stampname.Options{})

	header := &doc.GenManHeader{
		Title:   "STAMPNAME",
		Section: "1",
		Source:  "stampname " + version.Version,
		Manual:  "stampname manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
