package main

import (
	"os"

	"github.com/0dminnimda/OpenSYCL/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
