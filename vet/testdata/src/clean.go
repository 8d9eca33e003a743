package src

import "fmt"

func greet() {
	fmt.Printf("%s, %s! %d%% done\n", "hello", "world", 100)
}
