// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It logs in, drives the vault through setup, unlock and password change,
// and encrypts or decrypts journal records for the terminal. The shell
// command keeps one session open and locks it after the configured idle
// time.
package client
