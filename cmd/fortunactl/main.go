package main

import "github.com/go-fortuna/fortuna/cmd/fortunactl/cmd"

func main() {
	cmd.Execute()
}
