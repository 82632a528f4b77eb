package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
)

func main() {
	Execute()
}

func fatal(err error) {
	fmt.Fprintln(colorable.NewColorableStderr(), color.RedString("notes: error:"), err.Error())
	os.Exit(1)
}
