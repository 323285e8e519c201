package main

import "github.com/sweepline/minesweeper/cmd"

func main() {
	cmd.Execute()
}
