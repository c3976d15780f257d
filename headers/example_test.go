package headers_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seedmock/headers"
	"github.com/katalvlaran/seedmock/locale"
	"github.com/katalvlaran/seedmock/mersenne"
	"github.com/sirupsen/logrus"
)

// Two unique CORS request headers cannot exist: origin is the only one and it
// is singular.
func ExampleGenerator_Collect_unsatisfiable() {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	src := mersenne.NewSource(mersenne.WithSeed(1))
	gen := headers.New(src, locale.En(), headers.WithLogger(logger))

	_, err := gen.Collect(headers.Request, 2, headers.CollectInit{Group: headers.GroupCORS})
	fmt.Println(errors.Is(err, headers.ErrUnsatisfiable))
	fmt.Println(err)

	names, _ := gen.Collect(headers.Request, 1, headers.CollectInit{Group: headers.GroupCORS})
	fmt.Println(names)
	// Output:
	// true
	// Collect: request size=2 after 20 attempts: headers: invalid configuration, unable to produce a list of headers
	// [origin]
}

func ExampleGenerator_Headers() {
	src := mersenne.NewSource(mersenne.WithSeed(42))
	gen := headers.New(src, locale.En())

	set, err := gen.Headers(headers.Response, headers.HeadersInit{Group: headers.GroupCaching, Length: 3, Mime: "application/json"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(set.String())
}
