package main

import (
	"log"
	"os"

	"example.com/fittracker/internal/tracker"
)

func main() {
	runner := tracker.NewRunner(os.Stdout)
	if err := runner.Run(tracker.DemoPackages()); err != nil {
		log.Fatalf("demonstration run failed: %v", err)
	}
}
