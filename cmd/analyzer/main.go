// Command analyzer classifies the sentiment of every review in a CSV, Excel
// or PDF file and prints a summary report.
//
//	analyzer <file> <csv|xlsx|xls|pdf>
package main

import (
	"os"

	"github.com/spacesedan/sentibatch/config"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
