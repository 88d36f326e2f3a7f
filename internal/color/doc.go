// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps strings in ANSI escape codes for the diagnostic log.
// Color is off when NO_COLOR is set, on when FORCE_COLOR is set, and otherwise
// follows whether stderr is a terminal.
package color
