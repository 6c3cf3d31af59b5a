// cmd/mfur2cobs/main.go
package main

import (
	"cobsift/internal/appshell"
	"cobsift/internal/mfurapp"
)

func main() {
	appshell.Main(mfurapp.RunContext)
}
