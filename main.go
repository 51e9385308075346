// Public domain.

package main

import "github.com/soniakeys/refframe/internal/rfprog"

func main() {
	rfprog.Main()
}
