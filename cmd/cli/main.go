// DispLog - Automotive Logcat Parser
//
// DispLog parses Android Automotive logcat captures into structured records
// and classifies each entry by originating display surface.
package main

import (
	"os"

	"displog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
