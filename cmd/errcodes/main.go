// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main contains the errcodes command line tool.
package main

import (
	"github.com/openlogs/infra/cli"
	"github.com/openlogs/infra/logger"
)

func main() {
	exitCode := 0
	defer logger.ExitWithError(&exitCode)

	if err := cli.NewRootCmd().Execute(); err != nil {
		exitCode = 1
	}
}
