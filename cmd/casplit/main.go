package main

import (
	"log"
	"os"

	"github.com/anjor/casplit"
)

func main() {
	os.Exit(run(os.Args))
}

func run(argv []string) int {

	// Parse CLI and initialize everything
	// Argument errors are already printed along with the usage text
	spl, err := casplit.NewFromArgv(argv, os.Stdout, os.Stderr)
	if err != nil {
		return casplit.ExitStatus(err)
	}
	defer spl.Destroy()

	if err := spl.Run(); err != nil {
		log.Printf("%s", err)
		return casplit.ExitStatus(err)
	}

	spl.OutputSummary()
	return 0
}
