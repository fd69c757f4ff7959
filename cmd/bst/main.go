package main

import "github.com/XxHardcoreGamerxX/University/internal/cliapp"

func main() {
	cliapp.Main(cliapp.BST())
}
