package main

import (
	"github.com/myyachtvalue/modelsvc/internal/service/app"
)

var (
	version string
)

func main() {
	application := app.NewApp(version)
	application.Run()
}
