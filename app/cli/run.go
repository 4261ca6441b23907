package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/taskdesk/taskdesk/app/models"
	"github.com/taskdesk/taskdesk/app/services"
)

// CLI drives the interactive console session: first-run bootstrap, the
// login loop, and the role menus. All authorization and state transitions
// happen in the services; this layer only collects input and prints.
type CLI struct {
	auth  *services.AuthService
	users *services.UserService
	tasks *services.TaskService
	log   zerolog.Logger

	rawIn io.Reader
	in    *bufio.Reader
	out   io.Writer
}

func New(auth *services.AuthService, users *services.UserService, tasks *services.TaskService, log zerolog.Logger, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		auth:  auth,
		users: users,
		tasks: tasks,
		log:   log,
		rawIn: in,
		in:    newReader(in),
		out:   out,
	}
}

// Run executes the session loop until input is exhausted. io.EOF from the
// prompts is a normal shutdown, not an error.
func (c *CLI) Run(ctx context.Context) error {
	if len(c.users.All()) == 0 {
		if err := c.bootstrap(ctx); err != nil {
			return c.normalize(err)
		}
	}

	for {
		fmt.Fprintln(c.out)
		login, err := c.prompt("Login: ")
		if err != nil {
			return c.normalize(err)
		}
		password, err := c.promptPassword("Password: ")
		if err != nil {
			return c.normalize(err)
		}

		user := c.auth.Login(login, password)
		if user == nil {
			fmt.Fprintln(c.out, "Invalid credentials.")
			continue
		}
		c.log.Info().Str("login", user.Login).Str("role", string(user.Role)).Msg("session started")

		if user.Role == models.RoleManager {
			err = c.managerMenu(ctx, user)
		} else {
			err = c.employeeMenu(ctx, user)
		}
		if err != nil {
			return c.normalize(err)
		}
	}
}

// bootstrap creates the initial manager when the roster is empty.
func (c *CLI) bootstrap(ctx context.Context) error {
	fmt.Fprintln(c.out, "=== First run: create the manager account ===")
	login, err := c.prompt("Login: ")
	if err != nil {
		return err
	}
	password, err := c.promptPassword("Password: ")
	if err != nil {
		return err
	}

	if verr := services.ValidateRegistration(services.RegisterRequest{Login: login, Password: password}); verr != nil {
		fmt.Fprintf(c.out, "Invalid input: %s\n", verr.Message)
		return c.bootstrap(ctx)
	}

	if _, err := c.users.RegisterManager(ctx, login, password); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Manager account created.")
	return nil
}

func (c *CLI) normalize(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func formatTask(i int, t models.Task) string {
	return fmt.Sprintf("%d. %s | %s", i+1, t.Title, t.Status)
}

func (c *CLI) printTasks(tasks []models.Task) {
	for i, t := range tasks {
		fmt.Fprintln(c.out, formatTask(i, t))
	}
}

// selectTask prompts for a 1-based index into tasks.
func (c *CLI) selectTask(tasks []models.Task) (*models.Task, error) {
	c.printTasks(tasks)
	num, err := c.promptInt("Task #: ")
	if err != nil {
		return nil, err
	}
	if num < 1 || num > len(tasks) {
		return nil, nil
	}
	t := tasks[num-1]
	return &t, nil
}

var statusChoices = []models.Status{models.StatusToDo, models.StatusInProgress, models.StatusDone}

func (c *CLI) selectStatus() (models.Status, bool, error) {
	num, err := c.promptInt("New status: 1-ToDo  2-InProgress  3-Done: ")
	if err != nil {
		return "", false, err
	}
	if num < 1 || num > len(statusChoices) {
		return "", false, nil
	}
	return statusChoices[num-1], true, nil
}
