package main

import (
	"fmt"

	"dsc/cmd"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	cmd.Execute(fmt.Sprintf("%s-%s", version, commit))
}
