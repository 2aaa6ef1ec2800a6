package main

import "github.com/graretg02/Superbowl-app2/internal/cli"

func main() {
	cli.Execute()
}
