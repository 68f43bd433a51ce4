package main

import "github.com/vietdv277/scalekit/cmd"

func main() {
	cmd.Execute()
}
