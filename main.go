package main

import "escort-cms/cmd/server"

func main() {
	server.Init()
	server.Run()
}
