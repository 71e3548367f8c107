package main

import "github.com/bgraf/figurekit/cmd"

func main() {
	cmd.Execute()
}
