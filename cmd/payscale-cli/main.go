package main

import (
	"payscales/cmd/payscale-cli/commands"
	"payscales/lib/util/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
