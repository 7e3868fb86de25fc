package main

import "github.com/theirongolddev/spendr/cmd"

func main() {
	cmd.Execute()
}
