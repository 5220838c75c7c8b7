package main

import "media-batchload/cmd"

func main() {
	cmd.Execute()
}
