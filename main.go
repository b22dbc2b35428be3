package main

import "github.com/codebrew-ai/devstack/cmd"

func main() {
	cmd.Execute()
}
