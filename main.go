package main

import "github.com/theirongolddev/growthsim/cmd"

func main() {
	cmd.Execute()
}
