package main

import (
	cmd "github.com/rohmanhakim/autohackgovernor/internal/cli"
)

func main() {
	cmd.Execute()
}
