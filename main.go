// Copyright 2026 The RoamRelic Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/mothupally/RoamRelic/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
