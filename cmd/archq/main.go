package main

import (
	"github.com/amin1377/vtr-verilog-to-routing/cmd/archq/cmd"
)

func main() {
	cmd.Execute()
}
