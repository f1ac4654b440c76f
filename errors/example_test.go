package errors_test

import (
	"context"
	"fmt"

	"github.com/robinvdvleuten/readshow"
	"github.com/robinvdvleuten/readshow/decode"
	"github.com/robinvdvleuten/readshow/errors"
)

// Example showing how to use TextFormatter for CLI output
func ExampleTextFormatter() {
	pair := decode.PairOf(decode.Int, decode.Bool)
	_, err := readshow.ReadString(context.Background(), pair, "(1, Maybe)", readshow.WithFilename("value.txt"))

	formatter := errors.NewTextFormatter()
	fmt.Println(formatter.Format(err))
	// Output:
	// value.txt:1:5: In 2nd item of a 2-tuple
	// expected Bool value (False or True)
	//
	//    (1, Maybe)
	//        ^
}

// Example showing how to use JSONFormatter for tooling
func ExampleJSONFormatter() {
	pair := decode.PairOf(decode.Int, decode.Bool)
	_, err := readshow.ReadString(context.Background(), pair, "(1, Maybe)", readshow.WithFilename("value.txt"))

	formatter := errors.NewJSONFormatter()
	fmt.Println(formatter.Format(err))
	// Output:
	// {"type":"*parser.ParseError","message":"In 2nd item of a 2-tuple\nexpected Bool value (False or True)","severity":"soft","trace":["In 2nd item of a 2-tuple","expected Bool value (False or True)"],"position":{"filename":"value.txt","offset":4,"line":1,"column":5}}
}
