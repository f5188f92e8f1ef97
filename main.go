package main

import "golang-vlandevd/cmd"

func main() {
	cmd.Execute()
}
