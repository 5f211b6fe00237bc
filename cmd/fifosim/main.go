package main

import "github.com/sarchlab/fifosim/cmd/fifosim/cmd"

func main() {
	cmd.Execute()
}
