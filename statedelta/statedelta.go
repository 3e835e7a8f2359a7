// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package statedelta - in-memory account balance tracking
//
// applying a transaction adjusts one account balance and returns the
// delta it caused: a map holding the account and its new balance
package statedelta

import (
	"fmt"
	"sort"
	"sync"
)

// Transaction - a single balance movement on an account
type Transaction struct {
	Account string `gluamapper:"account"`
	Amount  int64  `gluamapper:"amount"`
}

// String - the canonical record form of a transaction
//
// this is the byte form callers commit into a merkle tree
func (tx Transaction) String() string {
	return fmt.Sprintf("%s:%d", tx.Account, tx.Amount)
}

// Delta - the state change caused by one transaction
type Delta map[string]int64

// State - a set of account balances
type State struct {
	sync.RWMutex
	balances map[string]int64
	count    uint64
}

// New - create an empty state
func New() *State {
	return &State{
		balances: make(map[string]int64),
	}
}

// Apply - adjust the account balance and report the delta
//
// the delta maps the account to its new balance
func (state *State) Apply(tx Transaction) Delta {
	state.Lock()
	defer state.Unlock()

	state.balances[tx.Account] += tx.Amount
	state.count += 1

	return Delta{tx.Account: state.balances[tx.Account]}
}

// Balance - current balance of one account
func (state *State) Balance(account string) (int64, bool) {
	state.RLock()
	defer state.RUnlock()

	balance, ok := state.balances[account]
	return balance, ok
}

// Balances - copy of all account balances
func (state *State) Balances() map[string]int64 {
	state.RLock()
	defer state.RUnlock()

	m := make(map[string]int64, len(state.balances))
	for account, balance := range state.balances {
		m[account] = balance
	}
	return m
}

// Accounts - all account names in sorted order
func (state *State) Accounts() []string {
	state.RLock()
	defer state.RUnlock()

	accounts := make([]string, 0, len(state.balances))
	for account := range state.balances {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)
	return accounts
}

// TransactionCount - number of transactions applied so far
func (state *State) TransactionCount() uint64 {
	state.RLock()
	defer state.RUnlock()

	return state.count
}
