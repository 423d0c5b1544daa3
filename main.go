package main

import "github.com/k021c1498/lifeplan-suisoku/cmd"

func main() {
	cmd.Execute()
}
