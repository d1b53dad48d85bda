package main

import "github.com/sidharthgehlot/TidyDesk/cmd"

func main() {
	cmd.Execute()
}
