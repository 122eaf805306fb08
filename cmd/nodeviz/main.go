// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command nodeviz loads subsurface scene files into the multi-target
// scene graph and prints the explorer tree and the views of each target.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/subsurface-viz/nodeviz/logx"
)

func main() {
	logx.SetDefaultLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "nodeviz:", err)
		stop()
		os.Exit(1)
	}
}
