package main

import (
	"fmt"
	"os"

	_ "shopapi/docs"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

// @title Shop API
// @version 1.0
// @description CRUD API for users, products and orders
// @host localhost:8000
// @BasePath /
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
