// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

/*

lschain is a one-off inspection tool: it loads a leaf certificate, attempts
to build a trust chain for it with the pathval engine, and prints a summary
plus an OpenSSL-inspired text dump of every certificate involved.

Unlike check_chain it never sets a process exit code tied to a Nagios
service state; it is meant for interactive troubleshooting.

*/
package main
