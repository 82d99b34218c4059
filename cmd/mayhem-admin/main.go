package main

import (
	"os"

	"github.com/deokapil/mayhem-admin/internal/cli"
	"github.com/deokapil/mayhem-admin/internal/common/logtrace"
)

func init() {
	if os.Getenv("MAYHEM_DEV_LOG") != "" {
		logtrace.InitDevLogger()
	} else {
		logtrace.InitLogger()
	}
}

func main() {
	cli.Execute()
}
