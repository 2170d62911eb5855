package config

import (
	"flag"
	"os"
	"time"

	"github.com/dvillarroel/actifijo/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend REST API (default from Config)
//	-f string   path of the local session database file (default from Config)
//	-n int      notification time-to-live in seconds (default from Config)
//	-q int      audit queue capacity (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-n", "-q"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the backend REST API")
	fs.StringVar(&cfg.SessionDBPath, "f", cfg.SessionDBPath, "path of the local session database file")
	notifyTTL := fs.Int("n", int(cfg.NotifyTTL.Seconds()), "notification time-to-live (in seconds)")
	fs.IntVar(&cfg.AuditQueueSize, "q", cfg.AuditQueueSize, "audit queue capacity")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.NotifyTTL = time.Duration(*notifyTTL) * time.Second
}
