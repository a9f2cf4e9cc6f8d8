package main

import "github.com/frahmantamala/hr-mock/cmd"

func main() {
	cmd.Execute()
}
