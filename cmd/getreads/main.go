// cmd/getreads/main.go
package main

import (
	"readtools/internal/app"
	"readtools/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
