package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-sub-keeper/internal/client"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("go-sub-client")

	cli := client.NewCLI(buildInfo(), log)
	if err := cli.ExecuteContext(context.Background()); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// buildInfo is printed by --version; stdout is reserved for command output.
func buildInfo() string {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return fmt.Sprintf("%s (date %s, commit %s)", buildVersion, buildDate, buildCommit)
}
