package main

import "github.com/Sheesh1006/service-backend/cli/cmd"

func main() {
	cmd.Execute()
}
