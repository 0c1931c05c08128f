package main

import "github.com/nanux-os/nsh/cmd"

func main() {
	cmd.Execute()
}
