package main

import "github.com/KirkDiggler/pourlog/internal/cli"

func main() {
	cli.Execute()
}
