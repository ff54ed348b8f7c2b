//go:build !assert_enabled

package fireworks

func Assert(condition bool) {
}
