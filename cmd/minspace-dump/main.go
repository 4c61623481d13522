// cmd/minspace-dump/main.go
package main

import (
	"minspace/internal/appshell"
	"minspace/internal/dumpapp"
)

func main() {
	appshell.Main(dumpapp.RunContext)
}
