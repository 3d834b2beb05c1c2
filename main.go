package main

import (
	"github.com/fyodor12344/DNA-ANALYZER/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
