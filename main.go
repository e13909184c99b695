package main

import "github.com/beka-birhanu/maze-planner/cli"

func main() {
	cli.Execute()
}
