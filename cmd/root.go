// Package cmd implements the CLI command structure for tasklist.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/nibzard/tasklist/internal/config"
	"github.com/nibzard/tasklist/internal/datadir"
	"github.com/nibzard/tasklist/internal/logging"
	"github.com/nibzard/tasklist/internal/manager"
	"github.com/nibzard/tasklist/internal/store"
	"github.com/nibzard/tasklist/internal/todo"
	"github.com/nibzard/tasklist/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the tasklist CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("tasklist", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := cws.Config
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	// Determine the subcommand; the TUI is the default
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	// Execute the subcommand
	switch subcommand {
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "add":
		return addCommand(cfg, remainingArgs)
	case "ls", "list":
		return lsCommand(cfg, remainingArgs)
	case "toggle", "done":
		return toggleCommand(cfg, remainingArgs)
	case "rm", "remove":
		return rmCommand(cfg, remainingArgs)
	case "edit":
		return editCommand(cfg, remainingArgs)
	case "due":
		return dueCommand(cfg, remainingArgs)
	case "theme":
		return themeCommand(cfg, remainingArgs)
	case "doctor":
		return doctorCommand(cws, remainingArgs)
	case "tail":
		return tailCommand(ctx, cfg, remainingArgs)
	case "init":
		return initCommand(cfg, remainingArgs)
	case "version":
		return versionCommand()
	case "help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// session is an opened store, its manager and the log file they write to.
type session struct {
	mgr *manager.Manager
	kv  store.Store
	log *logging.FileLogger
}

func openSession(cfg *config.Config) (*session, error) {
	logger, err := logging.OpenFile(cfg.LogPath(), cfg.LogOptions())
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}
	kv, err := cfg.OpenStore()
	if err != nil {
		logger.Close()
		return nil, fmt.Errorf("opening %s store: %w", cfg.StoreKind(), err)
	}
	mgr, err := manager.Open(kv, manager.Options{
		Logger:      logger.Logger,
		DefaultDark: cfg.DarkByDefault(),
	})
	if err != nil {
		kv.Close()
		logger.Close()
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	return &session{mgr: mgr, kv: kv, log: logger}, nil
}

func (s *session) Close() error {
	err := s.kv.Close()
	if logErr := s.log.Close(); err == nil {
		err = logErr
	}
	return err
}

// tuiCommand launches the TUI.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tasklist tui", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	return ui.RunTUI(ctx, s.mgr, ui.WithDateFormat(cfg.DateFormat))
}

// parseInterspersed parses flags anywhere in args and returns the remaining
// words in order. Everything after "--" is kept as words.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var tail []string
	for i, arg := range args {
		if arg == "--" {
			args, tail = args[:i], args[i+1:]
			break
		}
	}

	var words []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		words = append(words, args[0])
		args = args[1:]
	}
	return append(words, tail...), nil
}

// addCommand appends a task built from the remaining arguments.
func addCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tasklist add", flag.ContinueOnError)
	due := fs.String("due", "", "Due date (YYYY-MM-DD)")
	words, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	if err := todo.ValidateDue(strings.TrimSpace(*due)); err != nil {
		return err
	}

	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	task, err := s.mgr.Add(strings.Join(words, " "))
	if errors.Is(err, todo.ErrEmptyText) {
		return fmt.Errorf("text required")
	}
	if err != nil {
		return err
	}
	if *due != "" {
		if err := s.mgr.SetDue(task.ID, *due); err != nil {
			return err
		}
		task, _ = s.mgr.Get(task.ID)
	}

	fmt.Printf("Added %s\n", formatTask(task, len(s.mgr.Tasks()), cfg.DateFormat, false))
	return nil
}

// lsCommand lists tasks matching a filter. Row numbers are positions in the
// full list so they can be passed back as references.
func lsCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tasklist ls", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Show full task ids")
	asJSON := fs.Bool("json", false, "Print the stored JSON array")
	overdueOnly := fs.Bool("overdue", false, "Only show overdue tasks")
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) > 1 {
		return fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}
	filterName := ""
	if len(remaining) == 1 {
		filterName = remaining[0]
	}

	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.mgr.SetFilter(filterName); err != nil {
		return err
	}

	if *asJSON {
		data, err := todo.MarshalTasks(s.mgr.Visible())
		if err != nil {
			return err
		}
		fmt.Println(data)
		return nil
	}

	shown := 0
	filter := s.mgr.Filter()
	for i, task := range s.mgr.Tasks() {
		if !filter.Match(task) {
			continue
		}
		if *overdueOnly && !s.mgr.Overdue(task) {
			continue
		}
		line := formatTask(task, i+1, cfg.DateFormat, *verbose)
		if s.mgr.Overdue(task) {
			line += " (overdue)"
		}
		fmt.Println("  " + line)
		shown++
	}
	if shown == 0 {
		fmt.Println("No tasks found.")
	}
	fmt.Printf("%s · %s\n", todo.CountLabel(shown), filter)
	return nil
}

// resolveRef parses a single task reference argument.
func resolveRef(mgr *manager.Manager, args []string, name string) (todo.Task, error) {
	if len(args) == 0 {
		return todo.Task{}, fmt.Errorf("%s: task reference required", name)
	}
	return mgr.Resolve(args[0])
}

// toggleCommand flips the completion flag of one task.
func toggleCommand(cfg *config.Config, args []string) error {
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if len(args) > 1 {
		return fmt.Errorf("unexpected arguments: %v", args[1:])
	}
	task, err := resolveRef(s.mgr, args, "toggle")
	if err != nil {
		return err
	}
	if err := s.mgr.Toggle(task.ID); err != nil {
		return err
	}
	task, _ = s.mgr.Get(task.ID)
	state := "incomplete"
	if task.Completed {
		state = "completed"
	}
	fmt.Printf("Marked %s %s\n", shortID(task.ID), state)
	return nil
}

// rmCommand deletes one task.
func rmCommand(cfg *config.Config, args []string) error {
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if len(args) > 1 {
		return fmt.Errorf("unexpected arguments: %v", args[1:])
	}
	task, err := resolveRef(s.mgr, args, "rm")
	if err != nil {
		return err
	}
	if err := s.mgr.Remove(task.ID); err != nil {
		return err
	}
	fmt.Printf("Removed %s %s\n", shortID(task.ID), task.Text)
	return nil
}

// editCommand replaces the text of one task. Empty text is allowed.
func editCommand(cfg *config.Config, args []string) error {
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	task, err := resolveRef(s.mgr, args, "edit")
	if err != nil {
		return err
	}
	if err := s.mgr.BeginEdit(task.ID); err != nil {
		return err
	}
	if err := s.mgr.SetEditDraft(strings.Join(args[1:], " ")); err != nil {
		return err
	}
	if err := s.mgr.CommitEdit(); err != nil {
		return err
	}
	task, _ = s.mgr.Get(task.ID)
	fmt.Printf("Edited %s\n", formatTask(task, 0, cfg.DateFormat, false))
	return nil
}

// dueCommand sets or clears the due date of one task.
func dueCommand(cfg *config.Config, args []string) error {
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if len(args) > 2 {
		return fmt.Errorf("unexpected arguments: %v", args[2:])
	}
	task, err := resolveRef(s.mgr, args, "due")
	if err != nil {
		return err
	}
	due := ""
	if len(args) == 2 {
		due = args[1]
	}
	if err := s.mgr.SetDue(task.ID, due); err != nil {
		return err
	}
	if strings.TrimSpace(due) == "" {
		fmt.Printf("Cleared due date of %s\n", shortID(task.ID))
		return nil
	}
	task, _ = s.mgr.Get(task.ID)
	fmt.Printf("%s due %s\n", shortID(task.ID), formatDue(task.Due, cfg.DateFormat))
	return nil
}

// themeCommand shows or changes the saved theme.
func themeCommand(cfg *config.Config, args []string) error {
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if len(args) > 1 {
		return fmt.Errorf("unexpected arguments: %v", args[1:])
	}
	if len(args) == 1 {
		switch strings.ToLower(strings.TrimSpace(args[0])) {
		case config.ThemeDark:
			err = s.mgr.SetDark(true)
		case config.ThemeLight:
			err = s.mgr.SetDark(false)
		case "toggle":
			err = s.mgr.ToggleTheme()
		default:
			return fmt.Errorf("invalid theme %q (expected dark|light|toggle)", args[0])
		}
		if err != nil {
			return err
		}
	}

	fmt.Printf("Theme: %s\n", themeName(s.mgr.Dark()))
	return nil
}

// doctorCommand reports the configuration and checks the stored data.
func doctorCommand(cws *config.ConfigWithSources, args []string) error {
	fs := flag.NewFlagSet("tasklist doctor", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	cfg := cws.Config

	fmt.Println("Tasklist Doctor")
	fmt.Println("===============")
	fmt.Println()

	allOK := true

	// Config
	fmt.Println("Config:")
	if file := cws.GetConfigFile(); file != "" {
		fmt.Printf("  File: %s\n", file)
	} else {
		fmt.Println("  File: (none, using defaults)")
	}
	if *verbose {
		fields := make([]string, 0, len(cws.Sources))
		for field := range cws.Sources {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Printf("  %s: %s\n", field, cws.Sources[field])
		}
	}
	fmt.Println()

	// Data directory
	fmt.Printf("Data directory: %s\n", cfg.DataDir)
	if info, err := os.Stat(cfg.DataDir); err != nil {
		if os.IsNotExist(err) {
			fmt.Println("  ⚠️  Not found (will be created on first save)")
		} else {
			fmt.Printf("  ❌ Error: %v\n", err)
			allOK = false
		}
	} else if !info.IsDir() {
		fmt.Println("  ❌ Error: path is not a directory")
		allOK = false
	} else {
		fmt.Println("  ✅ OK")
	}
	fmt.Println()

	// Store
	kind := cfg.StoreKind()
	if path := cfg.StorePath(); path != "" {
		fmt.Printf("Store: %s (%s)\n", kind, path)
	} else {
		fmt.Printf("Store: %s\n", kind)
	}
	kv, err := cfg.OpenStore()
	if err != nil {
		fmt.Printf("  ❌ Open error: %v\n", err)
		allOK = false
	} else {
		defer kv.Close()
		fmt.Println("  ✅ OK")
		if !checkStoredTasks(kv, *verbose) {
			allOK = false
		}
		if !checkStoredTheme(kv) {
			allOK = false
		}
	}
	fmt.Println()

	// Log file
	fmt.Printf("Log file: %s\n", cfg.LogPath())
	if _, err := os.Stat(cfg.LogPath()); err != nil {
		if os.IsNotExist(err) {
			fmt.Println("  ⚠️  Not found (will be created on first run)")
		} else {
			fmt.Printf("  ❌ Error: %v\n", err)
			allOK = false
		}
	} else {
		fmt.Println("  ✅ OK")
	}
	fmt.Println()

	if allOK {
		fmt.Println("✅ All checks passed!")
		return nil
	}
	fmt.Println("⚠️  Some checks failed. Stored tasks may be ignored on load.")
	return fmt.Errorf("doctor checks failed")
}

func checkStoredTasks(kv store.Store, verbose bool) bool {
	raw, ok, err := kv.Get(store.KeyTasks)
	switch {
	case err != nil:
		fmt.Printf("  ❌ %s: %v\n", store.KeyTasks, err)
		return false
	case !ok:
		fmt.Printf("  ⚠️  %s: not set (empty list)\n", store.KeyTasks)
		return true
	}

	result := todo.ValidateTasks(raw)
	if !result.Valid {
		fmt.Printf("  ❌ %s: validation failed:\n", store.KeyTasks)
		for _, e := range result.Errors {
			fmt.Printf("     - %v\n", e)
		}
		return false
	}
	tasks, err := todo.UnmarshalTasks(raw, nil)
	if err != nil {
		fmt.Printf("  ❌ %s: %v\n", store.KeyTasks, err)
		return false
	}
	fmt.Printf("  ✅ %s: %d valid\n", store.KeyTasks, len(tasks))
	if verbose {
		for i, t := range tasks {
			fmt.Printf("    %s\n", formatTask(t, i+1, todo.DueLayout, true))
		}
	}
	return true
}

func checkStoredTheme(kv store.Store) bool {
	raw, ok, err := kv.Get(store.KeyDarkMode)
	switch {
	case err != nil:
		fmt.Printf("  ❌ %s: %v\n", store.KeyDarkMode, err)
		return false
	case !ok:
		fmt.Printf("  ⚠️  %s: not set (configured default)\n", store.KeyDarkMode)
	case raw != "true" && raw != "false":
		fmt.Printf("  ⚠️  %s: %q is read as light\n", store.KeyDarkMode, raw)
	default:
		fmt.Printf("  ✅ %s: %s\n", store.KeyDarkMode, raw)
	}
	return true
}

// tailCommand prints the log file.
func tailCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tasklist tail", flag.ContinueOnError)
	follow := fs.Bool("f", false, "Follow the log (like tail -f)")
	fs.BoolVar(follow, "follow", false, "Follow the log (like tail -f)")
	n := fs.Int("n", 0, "Number of lines to show (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logPath := cfg.LogPath()
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		fmt.Println("No log file found.")
		return nil
	}

	fmt.Printf("Tailing: %s\n", logPath)
	if *follow {
		fmt.Println("(Ctrl+C to stop)")
	}
	fmt.Println()

	return logging.TailLog(ctx, os.Stdout, logPath, *n, *follow)
}

// initCommand writes an example config file.
func initCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tasklist init", flag.ContinueOnError)
	user := fs.Bool("user", false, "Write the user config in the data directory")
	force := fs.Bool("force", false, "Overwrite an existing config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := filepath.Join(cfg.ProjectRoot, datadir.ConfigFile)
	if *user {
		path = datadir.ConfigPath(cfg.DataDir)
	}
	if _, err := os.Stat(path); err == nil && !*force {
		return fmt.Errorf("%s already exists (use -force to overwrite)", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.ExampleConfig()), 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Printf("tasklist version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Tasklist - a terminal to-do list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tasklist [options] [command] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui                 Launch the terminal UI (default command)")
	fmt.Fprintln(w, "  add <text...>       Add a task (-due YYYY-MM-DD; -- ends flags)")
	fmt.Fprintln(w, "  ls [filter]         List tasks (all|completed|incomplete)")
	fmt.Fprintln(w, "  toggle <ref>        Toggle a task's completion")
	fmt.Fprintln(w, "  edit <ref> <text>   Replace a task's text")
	fmt.Fprintln(w, "  due <ref> [date]    Set (YYYY-MM-DD) or clear a due date")
	fmt.Fprintln(w, "  rm <ref>            Delete a task")
	fmt.Fprintln(w, "  theme [mode]        Show or set the theme (dark|light|toggle)")
	fmt.Fprintln(w, "  doctor              Check config and stored data")
	fmt.Fprintln(w, "  tail                Show the log file")
	fmt.Fprintln(w, "  init                Write an example tasklist.toml")
	fmt.Fprintln(w, "  version             Show version information")
	fmt.Fprintln(w, "  help                Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "A <ref> is a row number from 'ls' (3 or #3) or a unique id prefix.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Add Options:")
	fmt.Fprintln(w, "  -due string")
	fmt.Fprintln(w, "        Due date (YYYY-MM-DD)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ls Options:")
	fmt.Fprintln(w, "  -v    Show full task ids")
	fmt.Fprintln(w, "  -json")
	fmt.Fprintln(w, "        Print the stored JSON array")
	fmt.Fprintln(w, "  -overdue")
	fmt.Fprintln(w, "        Only show overdue tasks")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tail Options:")
	fmt.Fprintln(w, "  -f, --follow")
	fmt.Fprintln(w, "        Follow the log (like tail -f)")
	fmt.Fprintln(w, "  -n int")
	fmt.Fprintln(w, "        Number of lines to show (0 = all)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Init Options:")
	fmt.Fprintln(w, "  -user  Write to the data directory instead of the current directory")
	fmt.Fprintln(w, "  -force Overwrite an existing file")
}

// formatTask renders one task line. A zero position omits the row number.
func formatTask(t todo.Task, position int, dateFormat string, verbose bool) string {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	id := shortID(t.ID)
	if verbose {
		id = t.ID
	}

	var b strings.Builder
	if position > 0 {
		fmt.Fprintf(&b, "%2d. ", position)
	}
	fmt.Fprintf(&b, "%s %s %s", box, id, t.Text)
	if t.HasDue() {
		fmt.Fprintf(&b, "  due %s", formatDue(t.Due, dateFormat))
	}
	return b.String()
}

// shortID abbreviates a task id for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatDue(due, layout string) string {
	if layout == "" || layout == todo.DueLayout {
		return due
	}
	t, err := time.Parse(todo.DueLayout, due)
	if err != nil {
		return due
	}
	return t.Format(layout)
}

func themeName(dark bool) string {
	if dark {
		return config.ThemeDark
	}
	return config.ThemeLight
}
