// Package employee provides the employee directory aggregate. Employees are
// attributed to shipment status changes and warehouse stock movements; the
// core stores only a password hash, never a plain password.
package employee

import (
	"errors"
	"fmt"
	"net/mail"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrEmployeeIsNotConstructed is returned when an Employee instance was not
// created through NewEmployee or RestoreEmployee.
var ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee constructor")

// Position is the job an employee performs.
type Position int

const (
	// PositionUnknown represents an invalid or undefined position.
	PositionUnknown Position = iota

	// PositionWarehouseOperator handles stock inside a warehouse.
	PositionWarehouseOperator

	// PositionCoordinator supervises logistics operations.
	PositionCoordinator

	// PositionCarrier transports shipments.
	PositionCarrier
)

func getPositionStrings() map[Position]string {
	return map[Position]string{
		PositionUnknown:           "unknown",
		PositionWarehouseOperator: "warehouse operator",
		PositionCoordinator:       "coordinator",
		PositionCarrier:           "carrier",
	}
}

// PositionFromString parses "warehouse operator", "coordinator" or "carrier".
func PositionFromString(s string) (Position, error) {
	for position, str := range getPositionStrings() {
		if position != PositionUnknown && str == s {
			return position, nil
		}
	}
	return PositionUnknown, errs.NewValueIsInvalidErrorWithCause("position",
		fmt.Errorf("%q is not a valid position", s))
}

// Validate checks that the Position is one of the defined jobs.
func (p Position) Validate() error {
	if p != PositionWarehouseOperator && p != PositionCoordinator && p != PositionCarrier {
		return errs.NewValueIsInvalidErrorWithCause("position",
			fmt.Errorf("%d is not a valid position", p))
	}
	return nil
}

// String implements fmt.Stringer. Safe to call on any Position value.
func (p Position) String() string {
	if str, ok := getPositionStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// Area is the department an employee works in.
type Area int

const (
	// AreaUnknown represents an invalid or undefined area.
	AreaUnknown Area = iota

	// AreaWarehouse is warehouse operations.
	AreaWarehouse

	// AreaReturns is the return intake department.
	AreaReturns

	// AreaLogisticsSupport is logistics support.
	AreaLogisticsSupport
)

func getAreaStrings() map[Area]string {
	return map[Area]string{
		AreaUnknown:          "unknown",
		AreaWarehouse:        "warehouse",
		AreaReturns:          "returns",
		AreaLogisticsSupport: "logistics support",
	}
}

// AreaFromString parses "warehouse", "returns" or "logistics support".
func AreaFromString(s string) (Area, error) {
	for area, str := range getAreaStrings() {
		if area != AreaUnknown && str == s {
			return area, nil
		}
	}
	return AreaUnknown, errs.NewValueIsInvalidErrorWithCause("area",
		fmt.Errorf("%q is not a valid area", s))
}

// Validate checks that the Area is one of the defined departments.
func (a Area) Validate() error {
	if a != AreaWarehouse && a != AreaReturns && a != AreaLogisticsSupport {
		return errs.NewValueIsInvalidErrorWithCause("area",
			fmt.Errorf("%d is not a valid area", a))
	}
	return nil
}

// String implements fmt.Stringer. Safe to call on any Area value.
func (a Area) String() string {
	if str, ok := getAreaStrings()[a]; ok {
		return str
	}
	return "unknown"
}

// Employee is a member of the logistics personnel.
//
// Invariants:
//   - first name and both last names are required
//   - phone and email are required; email must be a parseable address
//   - the password hash is required (hashing happens in the application layer)
type Employee struct {
	id           kernel.UUID
	passwordHash string
	firstName    string
	lastName1    string
	lastName2    string
	phone        string
	email        string
	position     Position
	area         Area

	isConstructed bool
}

// NewEmployee creates an employee, validating every invariant.
func NewEmployee(
	id kernel.UUID,
	passwordHash, firstName, lastName1, lastName2, phone, email string,
	position Position,
	area Area,
) (*Employee, error) {
	employee := &Employee{isConstructed: true}

	if err := errors.Join(
		employee.setID(id),
		employee.setPasswordHash(passwordHash),
		employee.setNames(firstName, lastName1, lastName2),
		employee.setPhone(phone),
		employee.setEmail(email),
		employee.setPosition(position),
		employee.setArea(area),
	); err != nil {
		return nil, err
	}

	return employee, nil
}

// RestoreEmployee rebuilds an employee from persistence.
func RestoreEmployee(
	id kernel.UUID,
	passwordHash, firstName, lastName1, lastName2, phone, email string,
	position Position,
	area Area,
) (*Employee, error) {
	return NewEmployee(id, passwordHash, firstName, lastName1, lastName2, phone, email, position, area)
}

// Validate ensures the Employee was built through a constructor.
func (e *Employee) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEmployeeIsNotConstructed
	}
	return nil
}

// IsEqual compares two employees by identifier.
func (e *Employee) IsEqual(other *Employee) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the employee's unique identifier.
func (e *Employee) ID() kernel.UUID {
	return e.id
}

// PasswordHash returns the stored credential hash.
func (e *Employee) PasswordHash() string {
	return e.passwordHash
}

// FirstName returns the given name.
func (e *Employee) FirstName() string {
	return e.firstName
}

// LastName1 returns the first surname.
func (e *Employee) LastName1() string {
	return e.lastName1
}

// LastName2 returns the second surname.
func (e *Employee) LastName2() string {
	return e.lastName2
}

// Phone returns the contact phone number.
func (e *Employee) Phone() string {
	return e.phone
}

// Email returns the contact email address.
func (e *Employee) Email() string {
	return e.email
}

// Position returns the employee's job.
func (e *Employee) Position() Position {
	return e.position
}

// Area returns the employee's department.
func (e *Employee) Area() Area {
	return e.area
}

func (e *Employee) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Employee) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	e.passwordHash = passwordHash
	return nil
}

func (e *Employee) setNames(firstName, lastName1, lastName2 string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	if lastName1 == "" {
		return errs.NewValueIsRequiredError("lastName1")
	}
	if lastName2 == "" {
		return errs.NewValueIsRequiredError("lastName2")
	}
	e.firstName = firstName
	e.lastName1 = lastName1
	e.lastName2 = lastName2
	return nil
}

func (e *Employee) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	e.phone = phone
	return nil
}

func (e *Employee) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	e.email = email
	return nil
}

func (e *Employee) setPosition(position Position) error {
	if err := position.Validate(); err != nil {
		return err
	}
	e.position = position
	return nil
}

func (e *Employee) setArea(area Area) error {
	if err := area.Validate(); err != nil {
		return err
	}
	e.area = area
	return nil
}
