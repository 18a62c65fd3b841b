package main

import "github.com/jsphweid/cadence/cmd"

func main() {
	cmd.Execute()
}
