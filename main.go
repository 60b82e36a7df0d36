package main

import "dadops/cmd"

func main() {
	cmd.Execute()
}
