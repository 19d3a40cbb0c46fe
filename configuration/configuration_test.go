// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/ledgerd/configuration"
)

type testDatabase struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

type testConfiguration struct {
	DataDirectory string       `gluamapper:"data_directory"`
	Database      testDatabase `gluamapper:"database"`
	Peers         []string     `gluamapper:"peers"`
}

const sampleConfiguration = `
local M = {}

M.data_directory = "/var/lib/ledgerd"

M.database = {
    directory = "data",
    name = "ledger",
}

M.peers = {
    "127.0.0.1:2130",
    "[::1]:2130",
}

return M
`

func TestParseConfigurationFile(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "test.conf")
	if err := os.WriteFile(fileName, []byte(sampleConfiguration), 0o600); nil != err {
		t.Fatalf("write test configuration error: %s", err)
	}

	var config testConfiguration
	if err := configuration.ParseConfigurationFile(fileName, &config); nil != err {
		t.Fatalf("parse error: %s", err)
	}

	if "/var/lib/ledgerd" != config.DataDirectory {
		t.Errorf("data directory: actual: %q", config.DataDirectory)
	}
	if "data" != config.Database.Directory || "ledger" != config.Database.Name {
		t.Errorf("database: actual: %+v", config.Database)
	}
	if 2 != len(config.Peers) {
		t.Errorf("peers: actual: %+v", config.Peers)
	}
}

func TestParseMissingFile(t *testing.T) {
	var config testConfiguration
	if err := configuration.ParseConfigurationFile("/nonexistent/path/test.conf", &config); nil == err {
		t.Fatal("unexpected success parsing a missing file")
	}
}
