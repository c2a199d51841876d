package main

import "github.com/notargets/godisloc/cmd"

func main() {
	cmd.Execute()
}
