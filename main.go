package main

import "qldf/cmd"

func main() {
	cmd.Execute()
}
