// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltrace/configuration"
	"github.com/bitmark-inc/avltrace/fault"
	"github.com/bitmark-inc/avltrace/scenario"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "avltrace.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	outputText = "text"
	outputJSON = "json"
)

// to hold log levels
type LoglevelMap map[string]string

var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - contents of a scenario file
type Configuration struct {
	Values     []int                `gluamapper:"values" json:"values"`
	Operations []scenario.Operation `gluamapper:"operations" json:"operations"`
	Output     string               `gluamapper:"output" json:"output"`
	PrintTree  bool                 `gluamapper:"print_tree" json:"print_tree"`
	Logging    logger.Configuration `gluamapper:"logging" json:"logging"`
}

// the operations of a configuration: initial values first
func (c *Configuration) operations() []scenario.Operation {
	return append(scenario.Inserts(c.Values), c.Operations...)
}

// defaults when no configuration file is given
func defaultConfiguration(logDirectory string) *Configuration {
	return &Configuration{
		Output: outputText,
		Logging: logger.Configuration{
			Directory: logDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    defaultLogLevels,
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration(defaultLogDirectory)

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.Output = strings.ToLower(options.Output)
	switch options.Output {
	case outputText, outputJSON:
	default:
		return nil, fault.ErrInvalidOutputFormat
	}

	if err := scenario.Validate(options.Operations); nil != err {
		return nil, err
	}

	// fail if log file is not a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = ensureAbsolute(dataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	return options, nil
}

// ensure the path is absolute
// if not, prepend the directory to make absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
