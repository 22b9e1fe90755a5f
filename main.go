package main

import "a11y-analyzer/cmd"

func main() {
	cmd.Execute()
}
