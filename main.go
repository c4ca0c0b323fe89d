package main

import "github.com/pders01/mnemos/cmd"

func main() {
	cmd.Execute()
}
