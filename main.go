package main

import "github.com/nikogura/career-risk/cmd"

func main() {
	cmd.Execute()
}
