package main

import "menu-admin/menu-svc/cmd"

func main() {
	cmd.Execute()
}
