package lib

// runner_test.go asserts on the line numbers of the tests below.
func greater(x, y int) bool { return x > y }

func greater_test(t *T) { t.Assert(greater(1337, 42)) }

// bad_test keeps its underscore so the report shows it verbatim.
func bad_test(t *T) {
	t.Assert(5 < 3)
}

func twice_failing_test(t *T) {
	t.Assert(1 == 2)
	t.Assert(3 == 4)
}

func multiline_test(t *T) {
	a, b := 1, 2
	t.Assert(a == 1 &&
		b == 3)
}

func nested_test(t *T) {
	t.Assert(func() bool {
		t.Assert(1 == 2)
		return true
	}())
}
