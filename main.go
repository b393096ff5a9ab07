package main

import "github.com/mouse-blink/metasip/cmd"

func main() {
	cmd.Execute()
}
