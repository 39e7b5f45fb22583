package main

import (
	"os"

	"github.com/GoBulma/GoBulma/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
