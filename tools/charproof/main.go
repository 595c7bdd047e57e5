// seehuhn.de/go/charproof - proofing tools for font character sets
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Charproof composes example text for proofing the character set of a font.
//
// The text is taken from a corpus of example sentences, organised by the
// tiers of the Adobe Latin, Cyrillic and Greek character sets.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/charproof/internal/logging"
	"seehuhn.de/go/charproof/tools/internal/buildinfo"
	"seehuhn.de/go/charproof/tools/internal/profile"
)

var rootCmd = struct {
	cobra.Command
	logLevel   string
	logFormat  string
	cpuprofile string
	memprofile string

	logger      *slog.Logger
	stopProfile func() error
}{
	Command: cobra.Command{
		Use:           "charproof",
		Short:         "Compose example text for proofing font character sets",
		SilenceUsage:  true,
		SilenceErrors: true,
	},
}

func init() {
	rootCmd.Version = buildinfo.Short("charproof")
	rootCmd.PersistentPreRunE = setup

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootCmd.logLevel, "log-level", "warn",
		"minimum level of log messages (debug, info, warn, error)")
	flags.StringVar(&rootCmd.logFormat, "log-format", "text",
		"format of log messages (text or json)")
	flags.StringVar(&rootCmd.cpuprofile, "cpuprofile", "",
		"write cpu profile to `file`")
	flags.StringVar(&rootCmd.memprofile, "memprofile", "",
		"write memory profile to `file`")
}

func setup(cmd *cobra.Command, _ []string) error {
	logger, err := logging.New(cmd.ErrOrStderr(), rootCmd.logLevel, rootCmd.logFormat)
	if err != nil {
		return err
	}
	rootCmd.logger = logger

	stop, err := profile.Start(rootCmd.cpuprofile, rootCmd.memprofile)
	if err != nil {
		return err
	}
	rootCmd.stopProfile = stop
	return nil
}

func main() {
	err := rootCmd.Execute()
	if rootCmd.stopProfile != nil {
		err = errors.Join(err, rootCmd.stopProfile())
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "charproof:", err)
		os.Exit(1)
	}
}
