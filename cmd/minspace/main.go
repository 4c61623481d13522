// cmd/minspace/main.go
package main

import (
	"minspace/internal/app"
	"minspace/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
