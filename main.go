package main

import "grid-snake/cmd"

func main() {
	cmd.Execute()
}
