package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/MKhiriev/go-journal-vault/internal/adapter"
	"github.com/MKhiriev/go-journal-vault/internal/app"
	"github.com/MKhiriev/go-journal-vault/internal/codec"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/service"
	"github.com/MKhiriev/go-journal-vault/internal/session"
	"github.com/MKhiriev/go-journal-vault/internal/workers"
)

const usage = `usage: journal-vault [flags] <command> [operands]

commands:
  register                      create the account
  setup                         create the vault key (once per account)
  status                        show whether the vault needs setup or unlock
  change-password               rewrap the vault key under a new password
  put <id|-> name=value...      encrypt and store fields of a record
  get <id> [name...]            decrypt and print a record
  list                          list record ids
  delete <id>                   delete a record
  shell                         open an interactive session
  version                       show client and server versions
`

const shellHelp = `commands: put, get, list, delete, status, lock, unlock, help, exit`

// App runs client commands against the vault.
type App struct {
	vault    service.Vault
	autoLock *session.AutoLock
	workers  *workers.Workers

	login  string
	prompt PasswordPrompt
	in     *bufio.Reader
	out    io.Writer

	logger *logger.Logger
}

// NewApp returns a client for login. autoLock may be nil, in which case the
// shell never locks on its own.
func NewApp(vault service.Vault, autoLock *session.AutoLock, login string, prompt PasswordPrompt, in *bufio.Reader, out io.Writer, logger *logger.Logger) *App {
	ws := workers.NewWorkers()
	if autoLock != nil {
		ws = workers.NewWorkers(autoLock)
	}

	return &App{
		vault:    vault,
		autoLock: autoLock,
		workers:  ws,
		login:    login,
		prompt:   prompt,
		in:       in,
		out:      out,
		logger:   logger,
	}
}

// Run executes one command. The session key is wiped before Run returns.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrUsage
	}
	if args[0] == "help" {
		fmt.Fprint(a.out, usage)
		return nil
	}
	if a.login == "" {
		return ErrNoLogin
	}

	defer a.vault.Lock()

	command, operands := args[0], args[1:]
	a.logger.Debug().Str("command", command).Msg("running client command")

	switch command {
	case "register":
		return a.register(ctx)
	case "setup":
		return a.setup(ctx)
	case "change-password":
		return a.changePassword(ctx)
	case "status":
		if _, err := a.open(ctx, false); err != nil {
			return err
		}
		return a.status(ctx)
	case "list":
		if _, err := a.open(ctx, false); err != nil {
			return err
		}
		return a.list(ctx)
	case "delete":
		if _, err := a.open(ctx, false); err != nil {
			return err
		}
		return a.delete(ctx, operands)
	case "put":
		if _, err := a.open(ctx, true); err != nil {
			return err
		}
		return a.put(ctx, operands)
	case "get":
		if _, err := a.open(ctx, true); err != nil {
			return err
		}
		return a.get(ctx, operands)
	case "shell":
		return a.shell(ctx)
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, command)
	}
}

// open logs in with a prompted password and optionally unlocks the vault
// with it. The password is returned for commands that need it again.
func (a *App) open(ctx context.Context, unlock bool) (string, error) {
	password, err := a.readPassword("Password: ")
	if err != nil {
		return "", err
	}

	if err = a.vault.Login(ctx, a.login, password); err != nil {
		return "", err
	}
	if unlock {
		if err = a.vault.Unlock(ctx, password); err != nil {
			return "", err
		}
	}

	return password, nil
}

func (a *App) register(ctx context.Context) error {
	password, err := a.readNewPassword("Password: ", "Repeat password: ")
	if err != nil {
		return err
	}

	if err = a.vault.Register(ctx, a.login, password); err != nil {
		if errors.Is(err, adapter.ErrConflict) {
			return fmt.Errorf("%w: %w", ErrLoginTaken, err)
		}
		return err
	}

	fmt.Fprintf(a.out, "registered %s, run setup to create the vault key\n", a.login)
	return nil
}

func (a *App) setup(ctx context.Context) error {
	password, err := a.open(ctx, false)
	if err != nil {
		return err
	}

	if err = a.vault.Setup(ctx, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "vault is set up and unlocked")
	return nil
}

func (a *App) changePassword(ctx context.Context) error {
	oldPassword, err := a.readPassword("Current password: ")
	if err != nil {
		return err
	}
	if err = a.vault.Login(ctx, a.login, oldPassword); err != nil {
		return err
	}

	newPassword, err := a.readNewPassword("New password: ", "Repeat new password: ")
	if err != nil {
		return err
	}

	if err = a.vault.ChangePassword(ctx, oldPassword, newPassword); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "password changed")
	return nil
}

func (a *App) status(ctx context.Context) error {
	state, err := a.vault.Status(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "vault %s\n", state)
	return nil
}

func (a *App) list(ctx context.Context) error {
	ids, err := a.vault.ListRecords(ctx)
	if err != nil {
		return err
	}

	for _, id := range ids {
		fmt.Fprintln(a.out, id)
	}
	return nil
}

func (a *App) delete(ctx context.Context, operands []string) error {
	if len(operands) != 1 {
		return fmt.Errorf("%w: delete <id>", ErrUsage)
	}

	if err := a.vault.DeleteRecord(ctx, operands[0]); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "deleted %s\n", operands[0])
	return nil
}

func (a *App) put(ctx context.Context, operands []string) error {
	if len(operands) < 2 {
		return fmt.Errorf("%w: put <id|-> name=value...", ErrUsage)
	}

	id := operands[0]
	if id == "-" {
		id = ""
	}

	record, fields, err := parseFields(operands[1:])
	if err != nil {
		return err
	}

	saved, err := a.vault.SaveRecord(ctx, id, record, fields)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "saved %s (version %d)\n", saved.ID, saved.Version)
	return nil
}

func (a *App) get(ctx context.Context, operands []string) error {
	if len(operands) < 1 {
		return fmt.Errorf("%w: get <id> [name...]", ErrUsage)
	}

	record, failures, err := a.vault.LoadRecord(ctx, operands[0], operands[1:])
	if err != nil {
		return err
	}

	names := make([]string, 0, len(record))
	for name := range record {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		value := record[name]
		if value == nil {
			value = ""
		}
		fmt.Fprintf(a.out, "%s: %v\n", name, value)
	}

	if len(failures) > 0 {
		failed := make([]string, 0, len(failures))
		for _, f := range failures {
			failed = append(failed, f.Field)
		}
		a.logger.Warn().Strs("fields", failed).Str("record", operands[0]).Msg("fields could not be decrypted")
		fmt.Fprintf(a.out, "warning: %d field(s) could not be decrypted\n", len(failures))
	}

	return nil
}

// shell keeps one unlocked session and reads commands line by line until
// exit or end of input.
func (a *App) shell(ctx context.Context) error {
	password, err := a.open(ctx, false)
	if err != nil {
		return err
	}

	state, err := a.vault.Status(ctx)
	if err != nil {
		return err
	}
	switch state {
	case service.NeedsSetup:
		return service.ErrSetupRequired
	case service.NeedsUnlock:
		if err = a.vault.Unlock(ctx, password); err != nil {
			return err
		}
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	fmt.Fprintln(a.out, shellHelp)
	for {
		fmt.Fprint(a.out, "> ")

		line, readErr := a.in.ReadString('\n')
		fields := strings.Fields(line)
		if len(fields) > 0 {
			if done := a.shellCommand(ctx, fields[0], fields[1:]); done {
				return nil
			}
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				fmt.Fprintln(a.out)
				return nil
			}
			return fmt.Errorf("read command: %w", readErr)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// shellCommand runs one shell line and reports whether the shell should
// exit. Command errors are printed, not returned.
func (a *App) shellCommand(ctx context.Context, command string, operands []string) bool {
	if a.autoLock != nil {
		a.autoLock.Touch()
	}

	var err error
	switch command {
	case "exit", "quit":
		return true
	case "help":
		fmt.Fprintln(a.out, shellHelp)
	case "put":
		err = a.put(ctx, operands)
	case "get":
		err = a.get(ctx, operands)
	case "list":
		err = a.list(ctx)
	case "delete":
		err = a.delete(ctx, operands)
	case "status":
		err = a.status(ctx)
	case "lock":
		a.vault.Lock()
		fmt.Fprintln(a.out, "vault locked")
	case "unlock":
		var password string
		if password, err = a.readPassword("Password: "); err == nil {
			err = a.vault.Unlock(ctx, password)
		}
		if err == nil {
			fmt.Fprintln(a.out, "vault unlocked")
		}
	default:
		err = fmt.Errorf("%w: unknown command %q", ErrUsage, command)
	}

	if err != nil {
		fmt.Fprintf(a.out, "error: %s\n", Message(err))
	}
	return false
}

func (a *App) readPassword(prompt string) (string, error) {
	password, err := a.prompt.ReadPassword(prompt)
	if err != nil {
		return "", err
	}
	if password == "" {
		return "", ErrEmptyPassword
	}
	return password, nil
}

func (a *App) readNewPassword(prompt, confirm string) (string, error) {
	password, err := a.readPassword(prompt)
	if err != nil {
		return "", err
	}

	repeated, err := a.prompt.ReadPassword(confirm)
	if err != nil {
		return "", err
	}
	if repeated != password {
		return "", ErrPasswordMismatch
	}

	return password, nil
}

// parseFields turns name=value operands into a record and the ordered list
// of field names. A repeated name keeps its last value.
func parseFields(operands []string) (codec.Record, []string, error) {
	record := make(codec.Record, len(operands))
	fields := make([]string, 0, len(operands))

	for _, op := range operands {
		name, value, ok := strings.Cut(op, "=")
		if !ok || name == "" {
			return nil, nil, fmt.Errorf("%w: expected name=value, got %q", ErrUsage, op)
		}
		if _, seen := record[name]; !seen {
			fields = append(fields, name)
		}
		record[name] = value
	}

	return record, fields, nil
}

// Message turns err into the text shown to the user.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrLoginTaken):
		return app.MsgLoginAlreadyExists
	case errors.Is(err, service.ErrUnlockFailed):
		return app.MsgUnlockFailed
	case errors.Is(err, session.ErrLocked):
		return app.MsgVaultLocked
	case errors.Is(err, service.ErrSetupRequired):
		return app.MsgSetupRequired
	case errors.Is(err, service.ErrAlreadySetUp):
		return app.MsgAlreadySetUp
	case errors.Is(err, service.ErrKeyChangedConcurrently):
		return app.MsgVersionConflict
	case errors.Is(err, service.ErrNotLoggedIn), errors.Is(err, adapter.ErrUnauthorized):
		return app.MsgInvalidLoginPassword
	case errors.Is(err, adapter.ErrNotFound):
		return app.MsgRecordNotFound
	case errors.Is(err, adapter.ErrBadRequest):
		return app.MsgInvalidDataProvided
	default:
		return err.Error()
	}
}
