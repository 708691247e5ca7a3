package main

import (
	"github.com/faiface/mainthread"
)

func main() {
	mainthread.Run(runGame)
}
