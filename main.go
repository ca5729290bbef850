package main

import "github.com/mansrc/mankit/cmd"

func main() {
	cmd.Execute()
}
