package domain

import (
	"fmt"
	"math/rand"

	"github.com/bxcodec/faker/v4"
)

// Person is a row in the personal form fixture.
type Person struct {
	FirstName string
	LastName  string
	Email     string
}

// Employee is a row in the employee roster fixture.
type Employee struct {
	ID         string
	FirstName  string
	LastName   string
	Email      string
	Department string
}

// InvoiceLine is a row in the invoice line-item block.
type InvoiceLine struct {
	Description string
	Quantity    int
	UnitPrice   float64
}

// Total returns the line amount (quantity × unit price).
func (l InvoiceLine) Total() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// Item is a row in the generic grid fixture.
type Item struct {
	Name  string
	Price float64
	Code  string
}

// TableRow is a row in the employee table fixture.
type TableRow struct {
	ID         int
	Name       string
	Department string
	Salary     int
}

var departments = []string{
	"Engineering",
	"Finance",
	"Human Resources",
	"Marketing",
	"Operations",
	"Sales",
}

// GeneratePeople creates n people with random names and emails.
func GeneratePeople(n int) []Person {
	people := make([]Person, n)
	for i := range people {
		people[i] = Person{
			FirstName: faker.FirstName(),
			LastName:  faker.LastName(),
			Email:     faker.Email(),
		}
	}
	return people
}

// GenerateEmployees creates n roster rows with zero-padded employee IDs.
func GenerateEmployees(n int) []Employee {
	employees := make([]Employee, n)
	for i := range employees {
		employees[i] = Employee{
			ID:         fmt.Sprintf("EMP-%04d", i+1),
			FirstName:  faker.FirstName(),
			LastName:   faker.LastName(),
			Email:      faker.Email(),
			Department: departments[rand.Intn(len(departments))],
		}
	}
	return employees
}

// GenerateInvoiceLines creates n line items with random quantities and prices.
func GenerateInvoiceLines(n int) []InvoiceLine {
	lines := make([]InvoiceLine, n)
	for i := range lines {
		lines[i] = InvoiceLine{
			Description: faker.Word() + " " + faker.Word(),
			Quantity:    rand.Intn(9) + 1,
			UnitPrice:   float64(rand.Intn(49900)+100) / 100,
		}
	}
	return lines
}

// GenerateItems creates n generic grid rows with SKU-style codes.
func GenerateItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			Name:  faker.Word(),
			Price: float64(rand.Intn(9900)+100) / 100,
			Code:  fmt.Sprintf("SKU-%05d", rand.Intn(100000)),
		}
	}
	return items
}

// GenerateTableRows creates n employee table rows with sequential IDs.
func GenerateTableRows(n int) []TableRow {
	rows := make([]TableRow, n)
	for i := range rows {
		rows[i] = TableRow{
			ID:         i + 1,
			Name:       faker.Name(),
			Department: departments[rand.Intn(len(departments))],
			Salary:     (rand.Intn(120) + 40) * 1000,
		}
	}
	return rows
}

// GeneratePlanValues creates a rows×plans matrix of benefit values, e.g.
// "$250 deductible". Used to populate the comparison fixture's plan columns.
func GeneratePlanValues(rows, plans int) [][]string {
	terms := []string{"deductible", "copay", "coinsurance", "out-of-pocket max", "premium"}
	matrix := make([][]string, rows)
	for r := range matrix {
		matrix[r] = make([]string, plans)
		for p := range matrix[r] {
			matrix[r][p] = fmt.Sprintf("$%d %s", (rand.Intn(40)+1)*25, terms[rand.Intn(len(terms))])
		}
	}
	return matrix
}
