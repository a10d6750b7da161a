package main

import "github.com/mytheresa/go-shop/cmd/shop/commands"

func main() {
	commands.Execute()
}
