package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime/pprof"

	"github.com/joho/godotenv"
	"github.com/tebeka/atexit"

	"github.com/lukaszgryglicki/tilelight/internal/tilelight"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("Error: .env: %v\n", err)
		os.Exit(1)
	}

	tilelight.Debug = os.Getenv("DEBUG") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		atexit.Register(func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		})
	}

	atexit.Exit(execute(os.Args[1:]))
}
