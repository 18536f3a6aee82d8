// Command toast shows dismissible toast notifications in the terminal.
package main

import (
	"log"

	"tableflip.dev/toast/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("toast: %v", err)
	}
}
