package main

import "go-qr-score/internal/cli"

func main() {
	cli.Execute()
}
