package main

import "github.com/ivmakarov/message-app/internal/server"

func main() {
	srv := server.NewServer()
	srv.Run()
}
