package cmd

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSplitArgs(t *testing.T) {
	assert.Equal(t, []string{"union", "{1,2}", "{2,3}"}, splitArgs("union {1,2} {2,3}"))
	assert.Equal(t, []string{"union", "{1, 2}", "{ 3 }"}, splitArgs("union {1, 2} { 3 }"),
		"spaces inside braces must not split the literal")
	assert.Equal(t, []string{"contains", "{5,10,15}", "10"}, splitArgs("  contains   {5,10,15}  10 "))
	assert.Empty(t, splitArgs(""))
	assert.Empty(t, splitArgs("   "))
	assert.Equal(t, []string{"help"}, splitArgs("help"))
}

func TestGetDotfilePath(t *testing.T) {
	t.Setenv("INTSET_CLI_HISTFILE", "/tmp/custom_history")
	assert.Equal(t, "/tmp/custom_history", getDotfilePath(IntsetCliHistFileEnv, IntsetCliHistFileDefault))

	t.Setenv("INTSET_CLI_HISTFILE", "/dev/null")
	assert.Equal(t, "", getDotfilePath(IntsetCliHistFileEnv, IntsetCliHistFileDefault))

	t.Setenv("INTSET_CLI_HISTFILE", "")
	t.Setenv("HOME", "/home/someone")
	assert.Equal(t, "/home/someone/.intset_history", getDotfilePath(IntsetCliHistFileEnv, IntsetCliHistFileDefault))
}
