package main

import "travelog/cmd"

func main() {
	cmd.Execute()
}
