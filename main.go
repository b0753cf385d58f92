package main

import "runpad/internal/cli"

func main() {
	cli.Execute()
}
