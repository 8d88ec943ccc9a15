package main

import "github.com/stagecrew/showboard/cmd/showboard-server/cmd"

func main() {
	cmd.Execute()
}
