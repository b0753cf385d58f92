package system

import (
    "os"

    clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger. It prints to stderr so log lines
// never mix with rendered command output on stdout.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
    ReportTimestamp: true,
    Prefix:          "runpad",
})

func init() {
    if os.Getenv("RUNPAD_DEBUG") != "" {
        Logger.SetLevel(clog.DebugLevel)
    }
}
