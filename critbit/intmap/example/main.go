package main

import (
	"fmt"

	"github.com/aglyzov/go-critbit/critbit/intmap"
)

func main() {
	m := intmap.New[uint8, string]()
	m.Set(0, "zero")
	m.Set(128, "half")
	m.Set(1, "one")
	m.Set(255, "max")
	m.Set(64, "quarter")

	m.DebugDump()

	if prev, ok := m.Set(1, "uno"); ok {
		fmt.Printf("Set(1)  -> replaced %q\n", prev)
	}
	if ptr := m.GetPtr(255); ptr != nil {
		*ptr += "!"
	}
	fmt.Printf("Len()   -> %v\n", m.Len())

	println("------")

	val, ok := m.Del(0)
	fmt.Printf("Del(0)  -> %q, %v\n", val, ok)
	val, ok = m.Del(0)
	fmt.Printf("Del(0)  -> %q, %v\n", val, ok)

	m.DebugDump()
}
