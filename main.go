package main

import (
	"github.com/harrybrwn/gradebook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.Stop(err)
	}
}
