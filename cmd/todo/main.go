package main

import "todolist/internal/cli"

func main() {
	cli.Execute()
}
