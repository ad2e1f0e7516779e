package main

import "github.com/magmast/sq/cmd"

func main() {
	cmd.Execute()
}
