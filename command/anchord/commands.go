// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"golang.org/x/crypto/ed25519"

	"github.com/agritrace/anchord/account"
	"github.com/agritrace/anchord/chain"
	"github.com/agritrace/anchord/util"
)

const (
	identityPublicKeyFilename  = "anchord.public"
	identityPrivateKeyFilename = "anchord.private"
)

// setup command handler
//
// commands that run to create key files; these commands cannot access
// any internal database or states or the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-identity", "identity":
		chainName := chain.Testing
		if len(arguments) >= 1 && "" != arguments[0] {
			chainName = arguments[0]
		}
		if !chain.Valid(chainName) {
			fmt.Printf("unknown chain: %q\n", chainName)
			exitwithstatus.Exit(1)
		}

		directoryArguments := []string{}
		if len(arguments) >= 2 {
			directoryArguments = arguments[1:]
		}
		publicKeyFilename := getFilenameWithDirectory(directoryArguments, identityPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(directoryArguments, identityPrivateKeyFilename)

		if util.EnsureFileExists(privateKeyFilename) {
			fmt.Printf("generate private key: %q error: file already exists\n", privateKeyFilename)
			exitwithstatus.Exit(1)
		}

		publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
		if nil != err {
			fmt.Printf("generate key pair error: %s\n", err)
			exitwithstatus.Exit(1)
		}

		identity := &account.Identity{
			Test:      chain.Agritrace != chainName,
			PublicKey: publicKey,
		}

		if err := ioutil.WriteFile(privateKeyFilename, []byte(hex.EncodeToString(privateKey)+"\n"), 0600); nil != err {
			fmt.Printf("write private key: %q error: %s\n", privateKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		if err := ioutil.WriteFile(publicKeyFilename, []byte(identity.String()+"\n"), 0644); nil != err {
			os.Remove(privateKeyFilename)
			fmt.Printf("write public key: %q error: %s\n", publicKeyFilename, err)
			exitwithstatus.Exit(1)
		}

		fmt.Printf("generated identity: %s\n", identity)
		fmt.Printf("private key file: %q\n", privateKeyFilename)
		fmt.Printf("public key file: %q\n", publicKeyFilename)

	case "version":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                                   (h)      - display this message\n\n")
		fmt.Printf("  version                                (v)      - display version\n\n")
		fmt.Printf("  gen-identity [CHAIN] [DIRECTORY]       (identity) - generate a submitter key pair\n")
		fmt.Printf("                                                    chain is one of: %s %s %s\n\n", chain.Agritrace, chain.Testing, chain.Local)
		fmt.Printf("  chain                                           - display the chain from the configuration\n\n")
		fmt.Printf("  config                                          - display the full configuration\n\n")

	default:
		// not a setup command
		return false
	}

	// indicate processed a command
	return true
}

// config command handler
//
// commands that perform enquiries on the already parsed configuration
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := ""
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "chain":
		fmt.Printf("%s\n", options.Chain)

	case "config":
		printJSON("", options)

	default:
		// not a config command
		return false
	}

	// indicate processed a command
	return true
}

// extract an optional directory argument and append a file name
func getFilenameWithDirectory(arguments []string, name string) string {
	directory := "."
	if len(arguments) >= 1 && "" != arguments[0] {
		directory = arguments[0]
	}
	return util.EnsureAbsolute(directory, filepath.Base(name))
}

// display a JSON block with an optional title
func printJSON(title string, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		exitwithstatus.Message("marshal error: %s", err)
	}

	if "" == title {
		fmt.Printf("%s\n", b)
	} else {
		fmt.Printf("%s: %s\n", title, b)
	}
}
