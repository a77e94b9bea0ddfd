//go:build !(js && wasm)

package main

import (
	"os"
	"os/user"
)

func getUsername() string {
	if name := os.Getenv("COUNTERS_USER"); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "unknown"
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}
