package main

import "obs-pkgver/internal/cli"

func main() {
	cli.Execute()
}
