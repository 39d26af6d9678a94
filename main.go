package main

import "github.com/fspick/fspick/cmd"

func main() {
	cmd.Execute()
}
