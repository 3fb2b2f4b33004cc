package tilelight

import (
	"fmt"
	"sync"
)

func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	fmt.Fprintf(DebugOut, "[DEBUG] "+format+"\n", args...)
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		fmt.Fprintf(DebugOut, "[DEBUG] "+format+"\n", args...)
	})
}
