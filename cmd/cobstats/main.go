// cmd/cobstats/main.go
package main

import (
	"cobsift/internal/appshell"
	"cobsift/internal/statsapp"
)

func main() {
	appshell.Main(statsapp.RunContext)
}
