package nested

import "log"

func deep() {
	log.Printf("%g done", 42)
}
