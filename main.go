package main

import (
	"exusiai.dev/matchstats/cmd/app"
)

func main() {
	app.Run()
}
