// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"

	"github.com/bitmark-inc/aitrustd/background"
)

type ticker struct {
	ready chan struct{}
}

func (s *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	close(s.ready)
	<-shutdown
	fmt.Println("stopped:", args)
}

func Example() {
	proc := &ticker{
		ready: make(chan struct{}),
	}

	p := background.Start(background.Processes{proc}, "publisher")
	<-proc.ready
	p.Stop()

	// Output: stopped: publisher
}
