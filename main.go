package main

import "storage-facade/cmd"

func main() {
	cmd.Execute()
}
