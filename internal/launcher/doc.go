// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package launcher starts one external program at a time and waits for it.
//
// A program that cannot be found or executed is still reported by a real child
// process: the launcher starts the not-found helper in its place, so the caller
// always gets a pid for every external command it dispatched.
package launcher
