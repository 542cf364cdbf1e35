/*
Copyright © 2025 Forge Authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import (
	"github.com/mchmarny/forge/pkg/cli"
)

func main() {
	cli.Execute()
}
