package main

import (
	"os"

	"github.com/sessionkit/noluhn/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
