// Package main is the entry point for the catalog service.
//
// @title REST API Go / Fiber
// @version 1.0.0
// @description API Docs for products
//
// @host localhost:4000
// @BasePath /
package main

import "catalog/cmd"

func main() {
	cmd.Execute()
}
