package main

import "github.com/nexoteam/directorio-api/cmd"

func main() {
	cmd.Execute()
}
