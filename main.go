package main

import "github.com/Dulitha99/Research-Website/cmd"

func main() {
	cmd.Execute()
}
