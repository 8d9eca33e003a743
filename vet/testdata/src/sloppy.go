package src

import "fmt"

func sloppy() {
	fmt.Printf("%d%s%d", "foo", "bar", 3)
	fmt.Errorf("%q", 1)
	fmt.Printf("%s\n", "a", "b")
}
