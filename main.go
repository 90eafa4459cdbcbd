package main

import "github.com/ADAning/animal-well-flute-sub000/cmd"

func main() {
	cmd.Execute()
}
