package main

import "catalogsync/cmd/catalogsync/cmd"

func main() {
	cmd.Execute()
}
