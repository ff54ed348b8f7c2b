//go:build assert_enabled

package fireworks

func Assert(condition bool) {
	if !condition {
		panic("assert failed")
	}
}
