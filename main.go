// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"context"
	"log"
	"os"

	"github.com/kilnworks/kiln/cmd"
)

func main() {
	log.SetFlags(log.LstdFlags)

	ctx := context.Background()
	os.Exit(cmd.Execute(ctx, os.Args[1:]))
}
