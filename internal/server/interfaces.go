// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// RunServer blocks until a stop signal arrives; Shutdown may also be called
// directly, for example from tests.
type Server interface {
	// RunServer serves requests until the process is asked to stop.
	RunServer()

	// Shutdown stops accepting requests and drains in-flight ones.
	Shutdown()
}
