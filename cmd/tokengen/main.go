/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command tokengen issues a bearer token for a username, signed with the
// configured secret. Useful for smoke tests and local development.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/suparena/financeapi"
	"github.com/suparena/financeapi/auth"
	"github.com/suparena/financeapi/config"
)

var (
	userFlag    = flag.String("user", "", "Username to issue the token for")
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := financeapi.GetVersionInfo()
		fmt.Printf("tokengen version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		os.Exit(0)
	}

	if *userFlag == "" {
		fmt.Fprintln(os.Stderr, "tokengen: -user is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*userFlag); err != nil {
		fmt.Fprintf(os.Stderr, "tokengen: %v\n", err)
		os.Exit(1)
	}
}

func run(user string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	helper, err := auth.NewTokenHelper(cfg.SecretKey, cfg.Algorithm, cfg.AccessTokenExpireMinutes)
	if err != nil {
		return err
	}

	token, err := helper.Issue(user)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
