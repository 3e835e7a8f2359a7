// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package templates - sample configuration text for setup commands
package templates

const (
	/**** Configuration template ****/
	ConfigurationTemplate = `-- blockpack.conf  -*- mode: lua -*-

local M = {}

-- all other directories and files are relative to this one
M.data_directory = arg[0]:match("(.*/)") or "."

-- number of recent blocks retained by the ring
M.window = {{.Window}}

-- blocks to pack; each block carries a list of transactions
-- a positive amount is a credit, a negative amount a debit
M.blocks = {
    {
        transactions = {
            { account = "alice", amount = 100 },
            { account = "bob", amount = 50 },
        },
    },
    {
        transactions = {
            { account = "alice", amount = -30 },
            { account = "carol", amount = 75 },
            { account = "bob", amount = 5 },
        },
    },
}

M.logging = {
    size = {{.LogSize}},
    count = {{.LogCount}},
    console = true,

    levels = {
        DEFAULT = "info",
    },
}

return M
`
)
