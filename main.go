package main

import "github.com/VoxDroid/upready/cmd"

func main() {
	cmd.Execute()
}
