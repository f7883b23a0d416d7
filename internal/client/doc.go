// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal admin client runtime.
//
// It binds the terminal UI to the process lifecycle: signal handling and
// the exit path. All content calls are made by the UI through the server
// adapter.
package client
