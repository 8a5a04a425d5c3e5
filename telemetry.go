package main

import (
	"github.com/heartbridge/telemetry/api"
)

func main() {
	api.MainLoop()
}
