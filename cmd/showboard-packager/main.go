package main

import "github.com/stagecrew/showboard/cmd/showboard-packager/cmd"

func main() {
	cmd.Execute()
}
