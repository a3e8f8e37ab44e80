package main

import "github.com/gaurav-prasanna/mixnorm/cmd"

func main() {
	cmd.Execute()
}
