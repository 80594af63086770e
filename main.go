package main

import "github.com/saltyorg/scss-lite/cmd"

func main() {
	cmd.Execute()
}
