package main

import "github.com/katalvlaran/c2ic/cmd/c2ic/cmd"

func main() {
	cmd.Execute()
}
