package main

import "better-food-logs/cmd"

func main() {
	cmd.Execute()
}
