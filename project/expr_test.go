package project

import "testing"

func TestExpandEnvExpr(t *testing.T) {
	testCases := []struct {
		name     string
		env      map[string]string
		input    string
		expected string
	}{
		{name: "no expressions", input: "6ba7b810-9dad-11d1-80b4-00c04fd430c8", expected: "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		{name: "single expression", env: map[string]string{"NS": "abc"}, input: "${env.NS}", expected: "abc"},
		{name: "multiple expressions", env: map[string]string{"A": "1", "B": "2"}, input: "${env.A}-${env.B}-${env.A}", expected: "1-2-1"},
		{name: "unset variable becomes empty", input: "x${env.PARAID_NOT_SET}y", expected: "xy"},
		{name: "missing closing brace", env: map[string]string{"X": "x"}, input: "start ${env.X and ${env.Y} end", expected: "start ${env.X and  end"},
		{name: "prefix only no key", input: "oops ${env.} done", expected: "oops  done"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if got := expandEnvExpr(tc.input); got != tc.expected {
				t.Errorf("expandEnvExpr(%q) = %q; want %q", tc.input, got, tc.expected)
			}
		})
	}
}
