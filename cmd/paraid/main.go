package main

import "github.com/viant/paraid/cmd/paraid/cmd"

func main() {
	cmd.Execute()
}
