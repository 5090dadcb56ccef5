package main

import "github.com/Charl-AI/Charl-AI.github.io/cmd"

func main() {
	cmd.Execute()
}
