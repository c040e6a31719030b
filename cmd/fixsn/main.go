// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

/*

fixsn converts a base 10 serial number into the base 16, colon delimited hex
string most tooling displays certificate serial numbers as (e.g., a serial
number copied out of older documentation that recorded the base 10 form).

*/
package main

import (
	"fmt"
	"math/big"
	"os"
	"regexp"

	"github.com/atc0005/pathval/internal/serialfmt"
)

var digitCheck = regexp.MustCompile(`^[0-9]+$`)

// sampleExpectedInput documents the base 10 form of the serial number used
// in the package's own example output below.
const sampleExpectedInput = "336872288293767042001244177974291853363"

func main() {
	// expected output: FD:6F:3E:24:98:C2:5B:1D:08:00:00:00:00:47:F0:33

	if len(os.Args) < 2 {
		fmt.Println("Error: Missing serial number (in base 10 format)")
		fmt.Println("Example expected input:", sampleExpectedInput)
		os.Exit(1)
	}

	if !digitCheck.MatchString(os.Args[1]) {
		fmt.Println("Error: Invalid serial number (in base 10 format)")
		fmt.Println("Example expected input:", sampleExpectedInput)
		os.Exit(1)
	}

	serialNumber := new(big.Int)
	if _, ok := serialNumber.SetString(os.Args[1], 10); !ok {
		fmt.Println("Error: Failed to parse provided serial number (in base 10 format)")
		fmt.Println("Example expected input:", sampleExpectedInput)
		os.Exit(1)
	}

	fmt.Println(serialfmt.Format(serialNumber))
}
