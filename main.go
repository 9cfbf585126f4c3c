// Copyright 2025 Naren Yellavula
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
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/cybrota/arbor/render"
)

const asciiLogo = `
 █████╗ ██████╗ ██████╗  ██████╗ ██████╗
██╔══██╗██╔══██╗██╔══██╗██╔═══██╗██╔══██╗
███████║██████╔╝██████╔╝██║   ██║██████╔╝
██╔══██║██╔══██╗██╔══██╗██║   ██║██╔══██╗
██║  ██║██║  ██║██████╔╝╚██████╔╝██║  ██║
╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═╝  ╚═╝
Self-balancing search trees, one key at a time [Version: %s%s%s]

`

// loadSettings reads the config file, falling back to defaults with a warning.
func loadSettings() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("%sFailed to load configuration: %v. Using default settings.%s", Warning, err, Reset)
	}
	return config
}

// newSessionFromConfig starts an empty tree with the configured key type.
func newSessionFromConfig(config *Config) TreeSession {
	session, err := NewTreeSession(config.Tree.KeyType)
	if err != nil {
		log.Fatalf("Error creating tree: %v", err)
	}
	return session
}

// printTree renders the session's tree with the named style and a status line.
func printTree(w io.Writer, session TreeSession, style string) error {
	out, err := render.NewManager().String(style, session.Snapshot())
	if err != nil {
		return err
	}
	fmt.Fprint(w, out)
	fmt.Fprintf(w, "%s%s%s\n", Info, session.Status(), Reset)
	return nil
}

func newRootCommand() *cobra.Command {
	logo := fmt.Sprintf(asciiLogo, Green, version, Reset)

	runUI := func(cmd *cobra.Command, args []string) {
		config := loadSettings()
		session := newSessionFromConfig(config)
		if err := runBubbleTeaApp(session, NewRenderCache(), config); err != nil {
			log.Fatalf("Error running UI: %v", err)
		}
	}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the interactive tree UI",
		Long:  fmt.Sprintf("%s\n%s", logo, `Run opens the interactive UI: type keys, watch the tree rebalance`),
		Args:  cobra.NoArgs,
		Run:   runUI,
	}

	var cmdInsert = &cobra.Command{
		Use:   "insert KEY...",
		Short: "Insert keys in order and draw the tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadSettings()
			session := newSessionFromConfig(config)

			style, _ := cmd.Flags().GetString("style")
			if style == "" {
				style = config.Display.Style
			}
			sorted, _ := cmd.Flags().GetBool("sorted")

			var err error
			if sorted || config.Tree.Populate == PopulateSorted {
				_, err = session.Load(args, loadOptionsFromConfig(config, len(args), true, true))
			} else {
				_, err = session.Insert(args)
			}
			if err != nil {
				return err
			}
			return printTree(cmd.OutOrStdout(), session, style)
		},
	}
	cmdInsert.Flags().String("style", "", "display style (pretty, balance, indented, details, preorder, inorder, postorder)")
	cmdInsert.Flags().Bool("sorted", false, "sort the keys and insert them middle-first")

	var cmdLoad = &cobra.Command{
		Use:   "load FILE",
		Short: "Insert keys read from a file, one or more per line (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadSettings()
			session := newSessionFromConfig(config)

			style, _ := cmd.Flags().GetString("style")
			if style == "" {
				style = config.Display.Style
			}
			sorted, _ := cmd.Flags().GetBool("sorted")
			quiet, _ := cmd.Flags().GetBool("quiet")

			source, err := openKeySource(args[0])
			if err != nil {
				return err
			}
			defer source.Close()

			tokens, err := readKeyTokens(source)
			if err != nil {
				return fmt.Errorf("error reading keys: %w", err)
			}

			opts := loadOptionsFromConfig(config, len(tokens), sorted || config.Tree.Populate == PopulateSorted, quiet)
			report, err := session.Load(tokens, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s%s%s\n", Green, report, Reset)
			if quiet {
				fmt.Fprintf(out, "%s\n", session.Status())
				return nil
			}
			return printTree(out, session, style)
		},
	}
	cmdLoad.Flags().String("style", "", "display style")
	cmdLoad.Flags().Bool("sorted", false, "sort the keys and insert them middle-first")
	cmdLoad.Flags().BoolP("quiet", "q", false, "print only the summary, not the tree")

	var cmdCompare = &cobra.Command{
		Use:   "compare KEY...",
		Short: "Compare AVL and unbalanced tree heights for the same keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session := newSessionFromConfig(loadSettings())
			cmp, err := session.Compare(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "keys:           %d\n", cmp.Keys)
			fmt.Fprintf(out, "avl height:     %d (balanced: %t)\n", cmp.AVLHeight, cmp.AVLBalanced)
			fmt.Fprintf(out, "plain height:   %d (balanced: %t)\n", cmp.BSTHeight, cmp.BSTBalanced)
			return nil
		},
	}

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Insert random keys and verify the AVL invariants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetInt("keys")
			runs, _ := cmd.Flags().GetInt("runs")
			seed, _ := cmd.Flags().GetInt64("seed")

			report, err := runStress(n, runs, seed)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s✅ %d runs of %d keys verified%s\n", Green, report.Runs, report.Keys, Reset)
			fmt.Fprintf(out, "max height %d (bound %.2f), rotations LL %d, LR %d, RR %d, RL %d, took %s\n",
				report.MaxHeight, report.Bound,
				report.Rotations.LL, report.Rotations.LR, report.Rotations.RR, report.Rotations.RL,
				report.Elapsed)
			return nil
		},
	}
	cmdStress.Flags().IntP("keys", "n", 10000, "distinct keys per run")
	cmdStress.Flags().Int("runs", 10, "number of runs")
	cmdStress.Flags().Int64("seed", 1, "random seed")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Arbor usage guide",
		Long:  fmt.Sprintf("%s\n%s", logo, `Usage displays the arbor CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration file, creating it if missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Arbor version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "arbor",
		Version:       version,
		Long:          logo,
		Args:          cobra.NoArgs,
		SilenceErrors: true, // main prints the error in colour
		// Default to the UI when no subcommand is provided
		Run: runUI,
	}
	rootCmd.AddCommand(cmdRun, cmdInsert, cmdLoad, cmdCompare, cmdStress, cmdUsage, cmdSettings, cmdVersion)
	return rootCmd
}

func main() {
	InitializeColors()
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s❌ %v%s\n", Error, err, Reset)
		os.Exit(1)
	}
}
