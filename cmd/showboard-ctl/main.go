package main

import "github.com/stagecrew/showboard/cmd/showboard-ctl/cmd"

func main() {
	cmd.Execute()
}
