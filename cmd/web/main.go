package main

import "mychild_backend/internal/app"

func main() {
	app.Run()
}
