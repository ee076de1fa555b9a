package main

import (
	"os"

	"github.com/Lixing-Zhang/kart-storefront/cmd/menuctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
