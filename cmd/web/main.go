package main

import "github.com/Amogh004/store-ratings-platform/internal/app"

func main() {
	app.Run()
}
