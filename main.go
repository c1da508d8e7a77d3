package main

import "resxcheck/internal/cli"

func main() {
	cli.Execute()
}
