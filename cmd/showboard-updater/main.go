package main

import "github.com/stagecrew/showboard/cmd/showboard-updater/cmd"

func main() {
	cmd.Execute()
}
