package main

import (
	"atvremote/cmd"

	_ "go.uber.org/automaxprocs"
)

func main() {
	cmd.Execute()
}
