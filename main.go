package main

import "github.com/gradelens/gradelens/cmd"

func main() {
	cmd.Execute()
}
