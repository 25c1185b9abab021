package main

import "github.com/securepass/securepass-go/internal/cli"

func main() {
	cli.Execute()
}
