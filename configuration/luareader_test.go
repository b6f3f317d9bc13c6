// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/aitrustd/configuration"
	"github.com/bitmark-inc/aitrustd/fault"
)

type database struct {
	Backend string `gluamapper:"backend"`
	Name    string `gluamapper:"name"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Chain         string            `gluamapper:"chain"`
	Organisations []string          `gluamapper:"organisations"`
	Database      database          `gluamapper:"database"`
	Levels        map[string]string `gluamapper:"levels"`
	Self          string            `gluamapper:"self"`
}

const script = `
local M = {}
M.data_directory = "."
M.chain = "testing"
M.organisations = { "Org1", "Org2" }
M.database = {
    backend = "sqlite",
    name = "aitrust.sqlite",
}
M.levels = { main = "info" }
M.self = arg[0]
return M
`

func write(t *testing.T, content string) string {
	name := filepath.Join(t.TempDir(), "aitrustd.conf")
	if err := os.WriteFile(name, []byte(content), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return name
}

func TestParseConfigurationFile(t *testing.T) {
	name := write(t, script)

	options := testConfiguration{
		Chain: "live",
	}
	err := configuration.ParseConfigurationFile(name, &options)
	assert.Nil(t, err, "wrong parse")
	assert.Equal(t, ".", options.DataDirectory, "wrong data directory")
	assert.Equal(t, "testing", options.Chain, "wrong chain")
	assert.Equal(t, []string{"Org1", "Org2"}, options.Organisations, "wrong organisations")
	assert.Equal(t, "sqlite", options.Database.Backend, "wrong backend")
	assert.Equal(t, "aitrust.sqlite", options.Database.Name, "wrong name")
	assert.Equal(t, map[string]string{"main": "info"}, options.Levels, "wrong levels")
	assert.Equal(t, name, options.Self, "wrong arg[0]")
}

func TestParseConfigurationFileKeepsDefaults(t *testing.T) {
	name := write(t, `return { data_directory = "/tmp" }`)

	options := testConfiguration{
		Chain: "live",
	}
	err := configuration.ParseConfigurationFile(name, &options)
	assert.Nil(t, err, "wrong parse")
	assert.Equal(t, "live", options.Chain, "default overwritten")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	var options testConfiguration

	err := configuration.ParseConfigurationFile("/no/such/file.conf", &options)
	assert.Equal(t, fault.ConfigurationFileNotFound, err, "wrong missing file error")

	err = configuration.ParseConfigurationFile(write(t, script), options)
	assert.Equal(t, fault.InvalidStructPointer, err, "wrong non pointer error")

	err = configuration.ParseConfigurationFile(write(t, `return 42`), &options)
	assert.True(t, fault.IsErrInvalid(err), "non table accepted")

	err = configuration.ParseConfigurationFile(write(t, `return {`), &options)
	assert.NotNil(t, err, "syntax error accepted")
}
