// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the vault server.
//
// It wires chi routes onto the service layer and owns the cross-cutting
// request concerns: trace ids, access logging, gzip, bearer authentication
// and the mapping of service error kinds onto status codes and the JSON
// error envelope.
package http
