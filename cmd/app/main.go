package main

import (
	"fleetsim/cmd"
)

func main() {
	cmd.Execute()
}
