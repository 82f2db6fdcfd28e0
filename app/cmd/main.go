package main

import (
	"os"

	"github.com/hcgdev/journal-api/app/cmd/schema"

	_ "github.com/go-sql-driver/mysql"
)

func listCommands() {
	println("Commands")
	println("\tschema\t\t\t- Manage the kvstore schema for the mysql storage driver")
	println("\thelp\t\t\t- Print the commands available")
}

func main() {
	if len(os.Args) < 2 {
		listCommands()
		return
	}
	switch os.Args[1] {
	case "schema":
		schema.Run(os.Args[2:])
	default:
		listCommands()
	}
}
