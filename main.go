package main

import "speedcheck/cmd"

func main() {
	cmd.Execute()
}
