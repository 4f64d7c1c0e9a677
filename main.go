package main

import "github.com/AKhubcher/TaskManager/cmd"

func main() {
	cmd.Execute()
}
