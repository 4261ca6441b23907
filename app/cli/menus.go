package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/taskdesk/taskdesk/app/models"
	"github.com/taskdesk/taskdesk/app/services"
)

// managerMenu runs until the manager logs out. Task creation persists
// explicitly after the mutation; employee registration persists inside the
// credential service.
func (c *CLI) managerMenu(ctx context.Context, manager *models.User) error {
	for {
		fmt.Fprintf(c.out, "\n*** Manager: %s ***\n", manager.Login)
		fmt.Fprintln(c.out, "1. Create task")
		fmt.Fprintln(c.out, "2. Register employee")
		fmt.Fprintln(c.out, "3. All tasks")
		fmt.Fprintln(c.out, "0. Log out")

		choice, err := c.promptInt("> ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			if err := c.createTask(ctx); err != nil {
				return err
			}
		case 2:
			if err := c.registerEmployee(ctx); err != nil {
				return err
			}
		case 3:
			// uuid.Nil selects every task regardless of assignee.
			c.printTasks(c.tasks.TasksForList(uuid.Nil))
		case 0:
			return nil
		}
	}
}

func (c *CLI) createTask(ctx context.Context) error {
	title, err := c.prompt("Title: ")
	if err != nil {
		return err
	}
	description, err := c.prompt("Description: ")
	if err != nil {
		return err
	}

	employees := c.users.Employees()
	if len(employees) == 0 {
		fmt.Fprintln(c.out, "No employees registered yet.")
		return nil
	}

	fmt.Fprintln(c.out, "Choose an assignee:")
	for i, e := range employees {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, e.Login)
	}
	idx, err := c.promptInt("> ")
	if err != nil {
		return err
	}
	if idx < 1 || idx > len(employees) {
		return nil
	}

	task := c.tasks.Create(title, description, employees[idx-1].ID)
	if err := c.tasks.Persist(ctx); err != nil {
		fmt.Fprintf(c.out, "Could not save the task: %v\n", err)
		return nil
	}
	fmt.Fprintf(c.out, "Task created (ID: %s)\n", task.ID)
	return nil
}

func (c *CLI) registerEmployee(ctx context.Context) error {
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
		return nil
	}

	if _, err := c.users.RegisterEmployee(ctx, login, password); err != nil {
		fmt.Fprintf(c.out, "Registration failed: %v\n", err)
		return nil
	}
	fmt.Fprintln(c.out, "Employee registered.")
	return nil
}

// employeeMenu runs until the employee logs out.
func (c *CLI) employeeMenu(ctx context.Context, employee *models.User) error {
	for {
		fmt.Fprintf(c.out, "\n*** Employee: %s ***\n", employee.Login)
		fmt.Fprintln(c.out, "1. My tasks")
		fmt.Fprintln(c.out, "2. Change task status")
		fmt.Fprintln(c.out, "0. Log out")

		choice, err := c.promptInt("> ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			c.printTasks(c.tasks.TasksForList(employee.ID))
		case 2:
			if err := c.changeStatus(ctx, employee); err != nil {
				return err
			}
		case 0:
			return nil
		}
	}
}

func (c *CLI) changeStatus(ctx context.Context, employee *models.User) error {
	list := c.tasks.TasksForList(employee.ID)
	if len(list) == 0 {
		fmt.Fprintln(c.out, "You have no tasks.")
		return nil
	}

	task, err := c.selectTask(list)
	if err != nil {
		return err
	}
	if task == nil {
		return nil
	}

	status, ok, err := c.selectStatus()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := c.tasks.UpdateStatus(task.ID, status, employee.ID); err != nil {
		fmt.Fprintln(c.out, "Not your task, or it no longer exists.")
		return nil
	}
	if err := c.tasks.Persist(ctx); err != nil {
		fmt.Fprintf(c.out, "Could not save the change: %v\n", err)
		return nil
	}
	fmt.Fprintln(c.out, "Status updated.")
	return nil
}
