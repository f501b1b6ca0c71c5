// TCO Compare — NAC total cost of ownership comparison.
//
// Desktop app, command line and HTTP API over the same cost engine.
//
// Build:
//   go build -o tcocompare ./cmd/tcocompare
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o tcocompare.exe ./cmd/tcocompare
//   GOOS=darwin  GOARCH=amd64 go build -o tcocompare-darwin ./cmd/tcocompare
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"context"
	"os"

	"github.com/piwi3910/tcocompare/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Run(context.Background(), os.Args, version); err != nil {
		os.Exit(1)
	}
}
