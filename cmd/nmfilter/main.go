// cmd/nmfilter/main.go
package main

import (
	"readtools/internal/appshell"
	"readtools/internal/nmapp"
)

func main() {
	appshell.Main(nmapp.RunContext)
}
