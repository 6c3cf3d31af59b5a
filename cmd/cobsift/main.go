// cmd/cobsift/main.go
package main

import (
	"cobsift/internal/app"
	"cobsift/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
