// Package buildinfo exposes version data injected at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/fieldkeeper/internal/buildinfo.buildVersion=v1.2.0 \
//	  -X github.com/dmitrijs2005/fieldkeeper/internal/buildinfo.buildDate=2026-10-19 \
//	  -X github.com/dmitrijs2005/fieldkeeper/internal/buildinfo.buildCommit=abc1234"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// PrintBuildData writes one line per field; unset fields print as N/A.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", orNA(buildVersion))
	fmt.Fprintf(w, "Build date: %s\n", orNA(buildDate))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(buildCommit))
}
