package main

import "github.com/bouwcheck/daglicht/cmd"

func main() {
	cmd.Execute()
}
