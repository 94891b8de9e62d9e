// Copyright 2025 go-glm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

const (
	envSep    = "GLM_SEP"
	envLocale = "GLM_LOCALE"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	sep     string
	format  string
	locale  string
	verbose bool

	// Resolved in setup.
	tag    language.Tag
	logger *slog.Logger
}

const rootExample = `  glm dot 1,2,3 4,5,6
  glm det "1,2; 3,4"
  glm --format %.2f normalize 3,4
  glm dot -- -1,2 3,4    # "--" ends the flags before a negative first component`

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:          "glm",
		Short:        "Vector and matrix calculator",
		Example:      rootExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.setup(cmd)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&o.sep, "sep", ",", "Vector component separator (env "+envSep+")")
	flags.StringVar(&o.format, "format", "", "fmt verb for printed numbers, e.g. %.3f")
	flags.StringVar(&o.locale, "locale", "", "BCP 47 tag for vector parsing and number printing (env "+envLocale+")")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Log debug information to stderr")

	root.AddCommand(
		newDotCmd(o),
		newCrossCmd(o),
		newLengthCmd(o),
		newNormalizeCmd(o),
		newReflectCmd(o),
		newRefractCmd(o),
		newSwizzleCmd(o),
		newDetCmd(o),
		newInverseCmd(o),
		newTransposeCmd(o),
		newMulCmd(o),
		newTransformCmd(o),
		newInfoCmd(o),
	)
	return root
}

// setup applies the environment fallbacks and builds the logger.
func (o *options) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if s, ok := os.LookupEnv(envSep); ok && !flags.Changed("sep") {
		o.sep = s
	}
	if s, ok := os.LookupEnv(envLocale); ok && !flags.Changed("locale") {
		o.locale = s
	}

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if o.sep == "" {
		return errors.New("--sep must not be empty")
	}
	if o.locale != "" {
		tag, err := language.Parse(o.locale)
		if err != nil {
			return fmt.Errorf("--locale %q: %w", o.locale, err)
		}
		o.tag = tag
	}
	o.logger.Debug("options", "command", cmd.Name(), "sep", o.sep, "format", o.format, "locale", o.tag)
	return nil
}

func (o *options) println(cmd *cobra.Command, s string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}
