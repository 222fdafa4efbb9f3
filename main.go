package main

import "mlmusic/cmd"

func main() {
	cmd.Execute()
}
