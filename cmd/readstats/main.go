// cmd/readstats/main.go
package main

import (
	"readstats/internal/appshell"
	"readstats/internal/cli"
)

func main() {
	appshell.Main(cli.Execute)
}
