package main

import "github.com/mouse-blink/hellfloat/cmd"

func main() {
	cmd.Execute()
}
