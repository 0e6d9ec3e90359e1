package main

import "github.com/termoflexpro/termoflex-store/cmd/termoflex/commands"

func main() {
	commands.Execute()
}
