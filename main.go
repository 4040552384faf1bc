package main

import "github.com/itsmostafa/tocview/cmd"

func main() {
	cmd.Execute()
}
