package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/smileynet/phonebook"
	"github.com/smileynet/phonebook/internal/config"
	"github.com/smileynet/phonebook/internal/contact"
	"github.com/smileynet/phonebook/internal/dashboard"
	"github.com/smileynet/phonebook/internal/logging"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// localDir holds project-level config and seed overrides.
const localDir = ".phonebook"

// Globals holds flags shared by every command.
type Globals struct {
	Config string `help:"Config file to use instead of the layered lookup." type:"path"`
	Seed   string `help:"Seed collection file (YAML list of contacts)." type:"path"`
}

// CLI is the top-level command structure for phonebook.
type CLI struct {
	Globals

	Version kong.VersionFlag `help:"Show version." short:"V"`
	Form    FormCmd          `cmd:"" default:"1" help:"Open the interactive contact form."`
	Add     AddCmd           `cmd:"" help:"Add a contact to the seed collection and print the result."`
	List    ListCmd          `cmd:"" help:"Print the seed collection."`
}

// session is the loaded state every command starts from.
type session struct {
	cfg      *config.Config
	log      *zap.Logger
	contacts []contact.Contact
	close    func()
}

// loadConfig loads layered config from user and project paths with env
// overrides. An explicit --config replaces the layered lookup.
func loadConfig(g *Globals) (*config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}

	var (
		cfg *config.Config
		err error
	)
	if g.Config != "" {
		cfg, err = config.Load(g.Config)
	} else {
		cfg, err = config.LoadLayered(
			os.ExpandEnv("$HOME/.config/phonebook/config.yaml"),
			filepath.Join(localDir, "config.yaml"),
		)
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if g.Seed != "" {
		cfg.Contacts.Seed = g.Seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadSeed reads the initial collection. An empty path uses the built-in
// collection unless .phonebook/contacts.yaml overrides it.
func loadSeed(path string) ([]contact.Contact, error) {
	if path == "" {
		return contact.LoadCollection(phonebook.OverlayFS(localDir, phonebook.Seeds), phonebook.SeedFile)
	}
	return contact.LoadCollection(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func openSession(g *Globals) (*session, error) {
	cfg, err := loadConfig(g)
	if err != nil {
		return nil, err
	}
	log, cleanup, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	contacts, err := loadSeed(cfg.Contacts.Seed)
	if err != nil {
		cleanup()
		return nil, err
	}
	log.Debug("seed loaded", zap.String("seed", cfg.Contacts.Seed), zap.Int("size", len(contacts)))
	return &session{cfg: cfg, log: log, contacts: contacts, close: cleanup}, nil
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// FormCmd opens the contact form TUI.
type FormCmd struct{}

// Run builds the dashboard and launches the TUI.
func (f *FormCmd) Run(g *Globals) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("form: requires a terminal (TTY)")
	}

	s, err := openSession(g)
	if err != nil {
		return fmt.Errorf("form: %w", err)
	}
	defer s.close()

	m := dashboard.NewModel(
		dashboard.WithContacts(s.contacts),
		dashboard.WithLogger(s.log),
	)

	var opts []tea.ProgramOption
	if s.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return f.run(true, tea.NewProgram(m, opts...))
}

// run executes the tea program, enabling testable wiring.
func (f *FormCmd) run(isTTY bool, prog teaRunner) error {
	if !isTTY {
		return fmt.Errorf("form: requires a terminal (TTY)")
	}
	_, err := prog.Run()
	return err
}

// AddCmd submits one contact against the seed collection.
type AddCmd struct {
	Name   string `arg:"" help:"Contact name."`
	Number string `arg:"" help:"Contact phone number."`
}

// Run loads the seed and submits the contact.
func (a *AddCmd) Run(g *Globals) error {
	s, err := openSession(g)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	defer s.close()
	return a.run(os.Stdout, os.Stderr, s.contacts, s.log)
}

// run submits the contact through a Dispatcher and prints the resulting
// collection. Rejection messages go to stderr as alerts.
func (a *AddCmd) run(stdout, stderr io.Writer, contacts []contact.Contact, log *zap.Logger) error {
	collection := contacts
	d := contact.NewDispatcher(
		func(c contact.Contact) { collection = append(collection, c) },
		contact.WithLogger(log),
		contact.WithNotifier(func(msg string) {
			_, _ = fmt.Fprintf(stderr, "alert: %s\n", msg)
		}),
	)

	var f contact.FormState
	f.SetName(a.Name)
	f.SetNumber(a.Number)
	if _, err := d.Submit(&f, contacts); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	return contact.EncodeCollection(stdout, collection)
}

// ListCmd prints the seed collection.
type ListCmd struct{}

// Run loads the seed and prints it.
func (l *ListCmd) Run(g *Globals) error {
	s, err := openSession(g)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	defer s.close()
	return l.run(os.Stdout, s.contacts)
}

func (l *ListCmd) run(w io.Writer, contacts []contact.Contact) error {
	return contact.EncodeCollection(w, contacts)
}

// Exit codes.
const (
	exitSuccess = 0
	exitFailure = 1
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	return exitFailure
}

// reportError prints err unless it was already shown to the user as an alert.
func reportError(w io.Writer, err error) {
	var rej *contact.Rejection
	if errors.As(err, &rej) && rej.Message != "" {
		return
	}
	_, _ = fmt.Fprintf(w, "error: %s\n", err)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("phonebook"),
		kong.Description("Add contacts to a phonebook, rejecting blanks and duplicates."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run(&cli.Globals)
	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
