package main

import "github.com/lastlook/site/cmd/lastlook/cmd"

func main() {
	cmd.Execute()
}
