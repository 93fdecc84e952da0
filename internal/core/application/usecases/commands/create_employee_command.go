package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/employee"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrCreateEmployeeCommandIsNotConstructed = errors.New(
	"CreateEmployeeCommand must be created via NewCreateEmployeeCommand constructor",
)

const minPasswordLength = 8

// CreateEmployeeCommand represents a request to register an employee.
// Carries the plaintext password; hashing happens in the handler so the
// aggregate only ever sees the hash.
type CreateEmployeeCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID
	password   string
	firstName  string
	lastName1  string
	lastName2  string
	phone      string
	email      string
	position   employee.Position
	area       employee.Area

	guard kernel.ConstructorGuard
}

// NewCreateEmployeeCommand creates a command to register an employee.
// The password must be at least eight characters; profile field invariants
// are enforced by the aggregate constructor in the handler.
func NewCreateEmployeeCommand(
	employeeID kernel.UUID,
	password, firstName, lastName1, lastName2, phone, email string,
	position employee.Position,
	area employee.Area,
) (CreateEmployeeCommand, error) {
	cmd := CreateEmployeeCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmployeeID(employeeID),
		cmd.setPassword(password),
		cmd.setPosition(position),
		cmd.setArea(area),
	); err != nil {
		return CreateEmployeeCommand{}, err
	}

	cmd.firstName = firstName
	cmd.lastName1 = lastName1
	cmd.lastName2 = lastName2
	cmd.phone = phone
	cmd.email = email
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrCreateEmployeeCommandIsNotConstructed)
}

// EmployeeID returns the unique identifier for the employee.
func (c CreateEmployeeCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// Password returns the plaintext password to be hashed.
func (c CreateEmployeeCommand) Password() string {
	return c.password
}

// FirstName returns the employee's first name.
func (c CreateEmployeeCommand) FirstName() string {
	return c.firstName
}

// LastName1 returns the employee's first surname.
func (c CreateEmployeeCommand) LastName1() string {
	return c.lastName1
}

// LastName2 returns the employee's second surname, possibly empty.
func (c CreateEmployeeCommand) LastName2() string {
	return c.lastName2
}

// Phone returns the employee's phone number.
func (c CreateEmployeeCommand) Phone() string {
	return c.phone
}

// Email returns the employee's email address.
func (c CreateEmployeeCommand) Email() string {
	return c.email
}

// Position returns the employee's position.
func (c CreateEmployeeCommand) Position() employee.Position {
	return c.position
}

// Area returns the employee's work area.
func (c CreateEmployeeCommand) Area() employee.Area {
	return c.area
}

func (c *CreateEmployeeCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	c.employeeID = employeeID
	return nil
}

func (c *CreateEmployeeCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < minPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause("password",
			fmt.Errorf("must be at least %d characters", minPasswordLength))
	}

	c.password = password
	return nil
}

func (c *CreateEmployeeCommand) setPosition(position employee.Position) error {
	if err := position.Validate(); err != nil {
		return err
	}

	c.position = position
	return nil
}

func (c *CreateEmployeeCommand) setArea(area employee.Area) error {
	if err := area.Validate(); err != nil {
		return err
	}

	c.area = area
	return nil
}
