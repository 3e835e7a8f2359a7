// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"text/template"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/blockpack/blockring"
	"github.com/bitmark-inc/blockpack/templates"
)

// fields substituted into the sample configuration
type configTemplateData struct {
	Window   int
	LogSize  int
	LogCount int
}

// setup command handler
//
// commands that run before the configuration file is read; they
// cannot access any internal state
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "gen-config", "conf":
		t, err := template.New("configuration").Parse(templates.ConfigurationTemplate)
		if nil != err {
			fmt.Printf("template parse error: %s\n", err)
			exitwithstatus.Exit(1)
		}
		data := configTemplateData{
			Window:   blockring.DefaultSize,
			LogSize:  defaultLogSize,
			LogCount: defaultLogCount,
		}
		if err := t.Execute(os.Stdout, data); nil != err {
			fmt.Printf("template execute error: %s\n", err)
			exitwithstatus.Exit(1)
		}

	case "start", "run":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help               (h)      - display this message\n\n")
		fmt.Printf("  version            (v)      - display version string\n\n")

		fmt.Printf("  gen-config         (conf)   - print a sample configuration file to stdout\n")
		fmt.Printf("\n")

		fmt.Printf("  start              (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                for convenience when passing script arguments\n")
		fmt.Printf("\n")
	}

	// indicate processing complete and prevent running of main program
	return true
}
