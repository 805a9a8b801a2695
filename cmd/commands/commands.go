package commands

import (
	"fmt"
	"io"

	"github.com/harrybrwn/config"
	"github.com/harrybrwn/gradebook/cmd/internal"
	"github.com/harrybrwn/gradebook/cmd/internal/opts"
	"github.com/harrybrwn/gradebook/cmd/print"
	"github.com/harrybrwn/gradebook/cmd/shell"
	"github.com/harrybrwn/gradebook/gradebook"
	"github.com/harrybrwn/gradebook/pkg/term"
	"github.com/spf13/cobra"
)

// Config is the layout of the config file.
type Config struct {
	// File is the data file used when none is given
	File    string `yaml:"file"`
	NoColor bool   `yaml:"nocolor"`
	// Notify sends a desktop notification after saving
	Notify bool `yaml:"notify"`
}

// Conf is the global config
var Conf = &Config{File: shell.DefaultFile}

// All returns all the commands.
func All(globals *opts.Global) []*cobra.Command {
	return []*cobra.Command{
		newShowCmd(globals),
		newSearchCmd(globals),
		newSearchGradeCmd(globals),
		newConfigCmd(),
	}
}

// Filename is the data file picked by the flags or the config.
func Filename(globals *opts.Global) string {
	if globals.File != "" {
		return globals.File
	}
	if Conf.File != "" {
		return Conf.File
	}
	return shell.DefaultFile
}

// Color reports whether output to w should be colored. Only
// terminals get color.
func Color(globals *opts.Global, w io.Writer) bool {
	return !globals.NoColor && !Conf.NoColor && term.IsTerminal(w)
}

func newShowCmd(globals *opts.Global) *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Short:   "List every student by average",
		Aliases: []string{"ls", "list"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := internal.LoadBook(Filename(globals))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			print.Table(out, book.Sorted(), Color(globals, out))
			return nil
		},
	}
}

func newSearchCmd(globals *opts.Global) *cobra.Command {
	return &cobra.Command{
		Use:   "search <id>",
		Short: "Look up a student by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := internal.LoadBook(Filename(globals))
			if err != nil {
				return err
			}
			s, ok := book.Get(args[0])
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), print.NoSuchPerson)
				return nil
			}
			out := cmd.OutOrStdout()
			print.Table(out, []*gradebook.Student{s}, Color(globals, out))
			return nil
		},
	}
}

func newSearchGradeCmd(globals *opts.Global) *cobra.Command {
	return &cobra.Command{
		Use:       "searchgrade <grade>",
		Short:     "List the students with a letter grade",
		Aliases:   []string{"grade"},
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"A", "B", "C", "D", "F"},
		RunE: func(cmd *cobra.Command, args []string) error {
			grade, ok := gradebook.ParseGrade(args[0])
			if !ok {
				return fmt.Errorf("%q is not a letter grade (A, B, C, D, F)", args[0])
			}
			book, err := internal.LoadBook(Filename(globals))
			if err != nil {
				return err
			}
			students := book.ByGrade(grade)
			if len(students) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), print.NoResults)
				return nil
			}
			out := cmd.OutOrStdout()
			print.Table(out, students, Color(globals, out))
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	var file bool
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"conf"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if file {
				f := config.FileUsed()
				if f == "" {
					return &internal.Error{Msg: "no config file found", Code: 1}
				}
				fmt.Fprintln(cmd.OutOrStdout(), f)
				return nil
			}
			return cmd.Usage()
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use: "get", Short: "Get a config variable",
		Run: func(c *cobra.Command, args []string) {
			for _, arg := range args {
				fmt.Fprintln(c.OutOrStdout(), config.GetString(arg))
			}
		}})
	cmd.Flags().BoolVarP(&file, "path", "p", false, "print the config file path")
	return cmd
}
