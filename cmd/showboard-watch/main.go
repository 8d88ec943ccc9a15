package main

import "github.com/stagecrew/showboard/cmd/showboard-watch/cmd"

func main() {
	cmd.Execute()
}
