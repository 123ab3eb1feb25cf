package main

import (
	"os"

	"github.com/artesyoficios/studio/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
