package main

import (
	"timeprof/app/cmd"
)

func main() {
	cmd.Execute()
}
