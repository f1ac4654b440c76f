// Large Value Generator
//
// This tool prints one large value of type
//
//	[(Int, Maybe [Char], Either Double Bool)]
//
// for performance testing and profiling of the decoders. Elements mix
// negative numbers, hexadecimal literals, escaped strings and nested
// parentheses to exercise every literal decoder.
//
// Usage:
//
//	go run main.go > large.txt
//	go run main.go 20000000 > large.txt  # Specify target size in bytes
//	readshow check --telemetry '[(Int, Maybe [Char], Either Double Bool)]' large.txt
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/robinvdvleuten/readshow/literal"
)

const (
	defaultTargetSize = 10 * 1024 * 1024 // 10MB
)

var words = []string{
	"alpha", "beta", "gamma", "delta",
	"tab\there", "new\nline", "bell\a", "null\x00byte",
	"quote\"d", "back\\slash", "café", "日本",
	"\x0eH", "\x7f", "\U0001F600",
}

func main() {
	targetSize := defaultTargetSize
	if len(os.Args) > 1 {
		if size, err := strconv.Atoi(os.Args[1]); err == nil {
			targetSize = size
		}
	}

	w := bufio.NewWriter(os.Stdout)
	defer func() { _ = w.Flush() }()

	bytesWritten, _ := w.WriteString("[")
	elementCount := 0

	for bytesWritten < targetSize {
		sep := ""
		if elementCount > 0 {
			sep = ","
		}
		n, _ := w.WriteString(sep + generateElement())
		bytesWritten += n
		elementCount++
	}

	n, _ := w.WriteString("]\n")
	bytesWritten += n

	fmt.Fprintf(os.Stderr, "\nGenerated %d bytes with %d elements\n", bytesWritten, elementCount)
}

func generateElement() string {
	return fmt.Sprintf("(%s,%s,%s)", generateInt(), generateMaybe(), generateEither())
}

func generateInt() string {
	switch rand.Intn(4) {
	case 0:
		return fmt.Sprintf("0x%x", rand.Int63())
	case 1:
		return fmt.Sprintf("(-%d)", rand.Intn(1_000_000))
	default:
		return strconv.Itoa(rand.Intn(1_000_000))
	}
}

func generateMaybe() string {
	if rand.Intn(5) == 0 {
		return "Nothing"
	}
	return "Just " + literal.QuoteString(words[rand.Intn(len(words))])
}

func generateEither() string {
	if rand.Intn(2) == 0 {
		f := rand.NormFloat64() * 1e6
		if f < 0 {
			return fmt.Sprintf("Left (%.6e)", f)
		}
		return fmt.Sprintf("Left %.6e", f)
	}
	if rand.Intn(2) == 0 {
		return "Right True"
	}
	return "Right (False)"
}
