// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltrace/configuration"
	"github.com/bitmark-inc/avltrace/fault"
)

type step struct {
	Op    string `gluamapper:"op"`
	Value int    `gluamapper:"value"`
}

type testConfiguration struct {
	Name       string            `gluamapper:"name"`
	Values     []int             `gluamapper:"values"`
	Operations []step            `gluamapper:"operations"`
	PrintTree  bool              `gluamapper:"print_tree"`
	Levels     map[string]string `gluamapper:"levels"`
}

func writeFile(t *testing.T, content string) string {
	fileName := filepath.Join(t.TempDir(), "test.conf")
	err := ioutil.WriteFile(fileName, []byte(content), 0600)
	require.Nil(t, err, "write configuration")
	return fileName
}

func TestParse(t *testing.T) {
	fileName := writeFile(t, `
local base = 10
return {
    name = "sample",
    values = { base, base * 2, base * 3 },
    operations = {
        { op = "insert", value = 40 },
        { op = "delete", value = 20 },
    },
    print_tree = true,
    levels = {
        main = "info",
        DEFAULT = "critical",
    },
}
`)

	config := &testConfiguration{
		Name: "default",
	}
	err := configuration.ParseConfigurationFile(fileName, config)
	require.Nil(t, err, "parse")

	assert.Equal(t, "sample", config.Name, "name")
	assert.Equal(t, []int{10, 20, 30}, config.Values, "values")
	assert.Equal(t, []step{{"insert", 40}, {"delete", 20}}, config.Operations, "operations")
	assert.True(t, config.PrintTree, "print tree")
	assert.Equal(t, "info", config.Levels["main"], "main level")
	assert.Equal(t, "critical", config.Levels["DEFAULT"], "default level")
}

func TestParseKeepsDefaults(t *testing.T) {
	fileName := writeFile(t, `return { values = { 5 } }`)

	config := &testConfiguration{
		Name: "default",
	}
	err := configuration.ParseConfigurationFile(fileName, config)
	require.Nil(t, err, "parse")

	assert.Equal(t, "default", config.Name, "name")
	assert.Equal(t, []int{5}, config.Values, "values")
}

func TestParseArgGlobal(t *testing.T) {
	fileName := writeFile(t, `return { name = arg[0] }`)

	config := &testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, config)
	require.Nil(t, err, "parse")
	assert.Equal(t, fileName, config.Name, "arg[0]")
}

func TestParseErrors(t *testing.T) {
	config := &testConfiguration{}

	err := configuration.ParseConfigurationFile("/no/such/file.conf", config)
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "missing file")

	err = configuration.ParseConfigurationFile(writeFile(t, `return {}`), *config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	err = configuration.ParseConfigurationFile(writeFile(t, `return 42`), config)
	assert.Equal(t, fault.ErrConfigurationNotATable, err, "not a table")

	err = configuration.ParseConfigurationFile(writeFile(t, `return {`), config)
	assert.NotNil(t, err, "syntax error")
}
