package main

import (
	"context"

	"blogcreator/internal/cli"
)

func main() {
	cli.Main(context.Background())
}
