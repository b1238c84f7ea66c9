package main

import "github.com/njchilds90/symdiff/cmd/symdiff/commands"

func main() {
	commands.Execute()
}
