package common

import "time"

// Version is overridden at build time with -ldflags "-X github.com/qa-demo/casegen/common.Version=...".
var Version = "v0.0.0"

var StartTime = time.Now().Unix()
