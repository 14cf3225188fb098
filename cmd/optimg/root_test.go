package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	root := getRootCmd()

	assert.Equal(t, "optimg", root.Use)
	assert.Equal(t, Version, root.Version)

	names := make(map[string]bool)
	for _, sub := range root.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["optimize"])
	assert.True(t, names["check"])
	assert.True(t, names["watch"])

	flag := root.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Empty(t, flag.DefValue)
}

func TestOptimizeCmdFlags(t *testing.T) {
	cmd := getOptimizeCmd()

	tool := cmd.Flags().Lookup("tool")
	require.NotNil(t, tool)
	assert.Equal(t, "smart", tool.DefValue)
	assert.Equal(t, "t", tool.Shorthand)

	assert.NotNil(t, cmd.Flags().Lookup("jobs"))
	assert.NotNil(t, cmd.Flags().Lookup("timeout"))
}
