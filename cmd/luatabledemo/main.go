// Command luatabledemo is a small runnable driver over the table and
// strpool packages, mirroring original_source/LuaLib/main.c's shape: build
// a table, insert a key sequence, and print what comes back out.
package main

import (
	"fmt"

	"github.com/nuralabs/luatable/strpool"
	"github.com/nuralabs/luatable/table"
	"github.com/nuralabs/luatable/value"
)

func main() {
	pool := strpool.NewPool()
	t := table.New(0, 0)

	// a mixed integer/string key sequence exercising both storage regions.
	keys := []string{"1", "2", "key1", "key2", "key3", "key4", "key5", "3", "4", "5", "6"}
	for i, k := range keys {
		key := keyFor(pool, k)
		slot, err := t.Set(key)
		if err != nil {
			fmt.Printf("set %q: %v\n", k, err)
			continue
		}
		*slot = value.Int(int64(i))
		fmt.Printf("after inserting %-5q: array=%-4d hash=%-4d length=%d\n",
			k, t.ArrayLen(), t.NodeLen(), t.Length())
	}

	fmt.Println("\nfinal contents:")
	for k, v := range t.All() {
		fmt.Printf("  %s = %d\n", describe(k), int64(v.AsNumber()))
	}
}

// keyFor parses a driver token as an integer key if possible, otherwise
// interns it as a string key.
func keyFor(pool *strpool.Pool, token string) value.Value {
	var n int64
	if _, err := fmt.Sscanf(token, "%d", &n); err == nil {
		return value.Int(n)
	}
	return value.StringRef(pool.Intern([]byte(token)))
}

func describe(k value.Value) string {
	if n, ok := k.AsInt(); ok {
		return fmt.Sprintf("%d", n)
	}
	if s, ok := k.Ref().(*strpool.Str); ok {
		return s.Bytes
	}
	return "?"
}
