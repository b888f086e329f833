package main

import "bespokedbikes/internal/cli"

func main() {
	cli.Execute()
}
