package main

import "github.com/theirongolddev/economanager/cmd"

func main() {
	cmd.Execute()
}
