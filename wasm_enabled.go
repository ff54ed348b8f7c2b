//go:build js && wasm

package main

// In the browser there is no disk to save screenshots to.

func WriteFile(name string, data []byte) {
}

func MakeDir(name string) {
}
