package main

import "pizza_dough/internal/cli"

func main() {
	cli.Execute()
}
