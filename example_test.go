package safefmt_test

import (
	"fmt"

	"github.com/jdibling/safefmt"
)

func ExamplePrintf() {
	foo := "foo"
	safefmt.Printf("%s%s%d\n", safefmt.Text(foo), safefmt.Text("bar"), safefmt.Int(3))
	// safefmt.Printf("%s\n", safefmt.Of(gizmo{})) // does not compile: gizmo is outside the Basic set
	// Output: foobar3
}

func ExampleCheck() {
	err := safefmt.Check("%d%s%d", safefmt.Text("foo"), safefmt.Text("bar"), safefmt.Int(3))
	fmt.Println(err)
	// Output: %d at 0: parameter is not integral (argument 1 is text)
}

func ExampleSprintf() {
	s, _ := safefmt.Sprintf("%d%% of %s, about %g", safefmt.Int(50), safefmt.Text("the work"), safefmt.Float(0.5))
	fmt.Println(s)
	// Output: 50% of the work, about 0.5
}
