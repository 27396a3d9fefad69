// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltrace/avl"
	"github.com/bitmark-inc/avltrace/fault"
	"github.com/bitmark-inc/avltrace/scenario"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "json", HasArg: getoptions.NO_ARGUMENT, Short: 'j'},
		{Long: "colour", HasArg: getoptions.NO_ARGUMENT, Short: 'g'},
		{Long: "print", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--json] [--colour] [--print] [--config-file=FILE [--watch]] [insert|delete|find N...] [print] [inorder] [snapshot]", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	watch := len(options["watch"]) > 0
	if watch && "" == configurationFile {
		exitwithstatus.Message("%s: watch requires a config-file", program)
	}

	extra, err := scenario.ParseArguments(arguments)
	if nil != err {
		exitwithstatus.Message("%s: arguments: %q  error: %s", program, arguments, err)
	}
	if "" == configurationFile && 0 == len(extra) {
		exitwithstatus.Message("%s: no operations, see --help", program)
	}

	masterConfiguration := defaultConfiguration(os.TempDir())
	if "" != configurationFile {
		masterConfiguration, err = getConfiguration(configurationFile)
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
		}
	}
	if len(options["json"]) > 0 {
		masterConfiguration.Output = outputJSON
	}
	if len(options["print"]) > 0 {
		masterConfiguration.PrintTree = true
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	p := &presenter{
		w:       os.Stdout,
		format:  masterConfiguration.Output,
		verbose: len(options["verbose"]) > 0,
		colour:  len(options["colour"]) > 0,
	}
	if len(options["quiet"]) > 0 {
		p = nil
	}

	if err := runScenario(masterConfiguration, extra, p); nil != err {
		log.Errorf("scenario error: %s", err)
		exitwithstatus.Message("%s: scenario error: %s", program, err)
	}

	if !watch {
		return
	}

	channels := newWatcherChannel()
	watcher, err := newFileWatcher(configurationFile, logger.New(watcherLoggerPrefix), channels)
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	if err := watcher.Start(); nil != err {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}
	defer watcher.Stop()

	// wait for changes or termination
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			return

		case <-channels.remove:
			log.Warnf("configuration file: %q removed", configurationFile)
			return

		case <-channels.change:
			c, err := getConfiguration(configurationFile)
			if nil != err {
				log.Errorf("re-read configuration error: %s", err)
				continue
			}
			c.Output = masterConfiguration.Output
			c.PrintTree = masterConfiguration.PrintTree
			if err := runScenario(c, extra, p); nil != err {
				log.Errorf("scenario error: %s", err)
			}
		}
	}
}

// run the configured operations followed by any from the command line
// on a new tree, initial values are hidden unless verbose
func runScenario(c *Configuration, extra []scenario.Operation, p *presenter) error {
	runner, err := scenario.NewRunner(avl.New(), logger.New("scenario"))
	if nil != err {
		return err
	}
	runner.SetPrintTree(c.PrintTree)

	ops := append(c.operations(), extra...)
	results, err := runner.Run(ops)
	if nil != err {
		return err
	}
	if nil == p {
		return nil
	}
	return p.show(results, len(c.Values))
}
