package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gen2brain/beeep"
	"github.com/harrybrwn/config"
	"github.com/harrybrwn/errs"
	"github.com/harrybrwn/gradebook/cmd/commands"
	"github.com/harrybrwn/gradebook/cmd/internal"
	"github.com/harrybrwn/gradebook/cmd/internal/env"
	"github.com/harrybrwn/gradebook/cmd/internal/opts"
	"github.com/harrybrwn/gradebook/cmd/shell"
	"github.com/harrybrwn/gradebook/gradebook"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

var version string

// Logger for the cmd package
var Logger = &lumberjack.Logger{
	Filename:   filepath.Join(os.TempDir(), "gradebook.log"),
	MaxSize:    25,  // megabytes
	MaxBackups: 10,  // number of spare files
	MaxAge:     365, // days
	Compress:   false,
}

// Stop will print to stderr and exit with the error's
// exit code, or 1 if it does not have one.
func Stop(message interface{}) {
	logrus.Errorf("%v", message)
	fmt.Fprintf(os.Stderr, "Error: %v\n", message)
	switch msg := message.(type) {
	case *internal.Error:
		os.Exit(msg.Code)
	default:
		os.Exit(1)
	}
}

// Execute will execute the root comand on the cli
func Execute() (err error) {
	logrus.SetOutput(Logger)
	if err = initConfig(); err != nil {
		return err
	}
	configfile := config.FileUsed()
	if configfile != "" {
		Logger.Filename = filepath.Join(filepath.Dir(configfile), "logs", "gradebook.log")
	}
	beeep.DefaultDuration = 800
	return NewRootCmd().Execute()
}

// initConfig reads the config file then lets the
// environment override it.
func initConfig() error {
	config.SetFilename("config.yml")
	config.SetType("yaml")
	config.AddPath("$GRADEBOOK_CONFIG")
	config.AddDefaultDirs("gradebook")
	config.SetConfig(commands.Conf)

	err := config.ReadConfigFile()
	switch err {
	case nil:
		break
	case config.ErrNoConfigDir, config.ErrNoConfigFile:
		logrus.Info(err)
	default:
		return err
	}
	if err = env.Decode("gradebook", commands.Conf); err != nil {
		return errors.Wrap(err, "bad environment config")
	}
	return nil
}

// NewRootCmd creates the root command. With no subcommand it
// starts an interactive session.
func NewRootCmd() *cobra.Command {
	globalFlags := opts.Global{}
	root := &cobra.Command{
		Use:           "gradebook [file]",
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       version,
		Short:         "Manage a file of student exam scores.",
		Long: `Start an interactive session to query and edit a gradebook.

Commands inside the session:
	show          list every student by average
	search        look up a student by id
	searchgrade   list the students with a letter grade
	add           add a student
	changescore   change a midterm or final score
	remove        remove a student
	quit          exit, optionally saving to a file`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			session := shell.New(nil, cmd.InOrStdin(), cmd.OutOrStdout())
			session.SetColor(commands.Color(&globalFlags, cmd.OutOrStdout()))
			session.Save = save

			filename := globalFlags.File
			if len(args) > 0 {
				filename = args[0]
			}
			if filename == "" {
				filename, err = session.AskFilename(commands.Conf.File)
				if err != nil {
					return err
				}
			}
			book, err := internal.LoadBook(filename)
			if err != nil {
				return err
			}
			session.SetBook(book)
			return session.Run()
		},
	}

	globalFlags.AddToFlagSet(root.PersistentFlags())

	root.SetUsageTemplate(commandTemplate)
	root.AddCommand(append(
		commands.All(&globalFlags),
		newCompletionCmd(),
	)...)
	return root
}

func save(book *gradebook.Book, filename string) error {
	if err := gradebook.Save(book, filename); err != nil {
		return err
	}
	if commands.Conf.Notify {
		err := beeep.Notify(
			"gradebook",
			fmt.Sprintf("Saved %d students to %s", book.Len(), filename),
			"",
		)
		if err != nil {
			logrus.WithError(err).Warn("could not send notification")
		}
	}
	return nil
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion",
		Short: "Print a completion script to stdout.",
		Long: `Use the completion command to generate a script for shell
completion. Note: for zsh you will need to use the command
'compdef _gradebook gradebook' after you source the generated script.`,
		Example:   "$ source <(gradebook completion zsh)",
		ValidArgs: []string{"zsh", "bash", "ps", "powershell", "fish"},
		Aliases:   []string{"comp"},
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			root := cmd.Root()
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				return errors.New("no shell type given")
			}
			switch args[0] {
			case "zsh":
				return root.GenZshCompletion(out)
			case "ps", "powershell":
				return root.GenPowerShellCompletion(out)
			case "bash":
				return root.GenBashCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, false)
			}
			return errs.New("unknown shell type")
		},
	}
}

var commandTemplate = `Usage:
{{if .Runnable}}
	{{.UseLine}}{{end}}{{if gt (len .Aliases) 0}}

Aliases:
	{{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
	{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
	{{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:

{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:

{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:
{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
	{{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
