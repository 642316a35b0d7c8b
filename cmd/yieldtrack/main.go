package main

import (
	"github.com/rustyeddy/yieldtrack/internal/cli"
)

func main() {
	cli.Execute()
}
