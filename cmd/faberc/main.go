// Command faberc is the Faber compiler's command-line driver: a thin main
// that hands off to pkg/cli, the way the teacher's cmd/funxy/main.go hands
// off to pkg/cli/entry.go.
package main

import (
	"os"

	"github.com/funvibe/faber/pkg/cli"
)

func main() {
	os.Exit(cli.Run())
}
