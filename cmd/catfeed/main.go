package main

import "cat-feeding-tracker/internal/cli"

func main() {
	cli.Execute()
}
