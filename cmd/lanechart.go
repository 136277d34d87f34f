package main

import "github.com/ingyamilmolinar/lanechart/internal/cli"

func main() {
	cli.Execute()
}
