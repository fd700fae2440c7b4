package main

import "site-cms/cmd"

func main() {
	cmd.Execute()
}
