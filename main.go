package main

import "github.com/robertgumeny/authkit/cmd"

func main() {
	cmd.Execute()
}
