package main

import (
	"fmt"

	"github.com/felipe-sbm/duck-chess/ui"
)

func main() {
	if err := ui.RunDuckChess(); err != nil {
		fmt.Println(err)
	}
}
