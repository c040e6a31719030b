// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

/*

check_chain is a Nagios plugin that validates a leaf certificate's trust
chain using the pathval engine.

Flags control where the leaf certificate, trust bundle, and optional
intermediates come from and which identity or extended key usage the chain
must satisfy. See the -h output for the full flag list.

*/
package main
