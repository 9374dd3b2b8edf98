// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

// state represents the different views or modes of the TUI.
type state int

const (
	stateItem    state = iota // one item in detail
	stateList                 // every item with the cursor marked
	stateComment              // comment input for the current item
)

const (
	headerHeight = 2 // title line plus progress line
	footerHeight = 2 // status line plus help line
)
