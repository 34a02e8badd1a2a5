package main

import "github.com/Johannes-Berggren/webgit/cmd"

func main() {
	cmd.Execute()
}
