package main

import (
	"github.com/scholardata/scholartab/cmd"

	// Register source adapters
	_ "github.com/scholardata/scholartab/source/mapped"
	_ "github.com/scholardata/scholartab/source/portal"
)

func main() {
	cmd.Execute()
}
