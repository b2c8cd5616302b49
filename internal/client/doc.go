// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Voronin

// Package client implements the interactive client application runtime.
//
// It wires terminal UI flows, client services, and background synchronization
// into a single process lifecycle.
package client
