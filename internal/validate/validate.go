// Package validate holds the field checks applied to user-entered
// records before they reach the data manager. Each collection check
// returns the full list of problems so a form can show them together.
package validate

import (
	"regexp"
	"strings"

	"replenishhq/internal/models"
)

var (
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneCharsRe = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
	digitRe      = regexp.MustCompile(`\D`)
)

func Email(email string) bool {
	return emailRe.MatchString(email)
}

// Phone accepts digits with common separators and requires at least
// ten actual digits.
func Phone(phone string) bool {
	if !phoneCharsRe.MatchString(phone) {
		return false
	}
	return len(digitRe.ReplaceAllString(phone, "")) >= 10
}

func Product(p models.Product) []string {
	var errs []string

	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, "Product name is required")
	}
	if strings.TrimSpace(p.SKU) == "" {
		errs = append(errs, "SKU is required")
	}
	if p.Price <= 0 {
		errs = append(errs, "Valid price is required")
	}
	if p.Cost < 0 {
		errs = append(errs, "Valid cost is required")
	}
	if p.Stock < 0 {
		errs = append(errs, "Valid stock quantity is required")
	}
	if p.Threshold < 0 {
		errs = append(errs, "Valid reorder threshold is required")
	}
	if p.Category == "" {
		errs = append(errs, "Category is required")
	}

	return errs
}

func Supplier(s models.Supplier) []string {
	var errs []string

	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, "Supplier name is required")
	}
	if !Email(s.Email) {
		errs = append(errs, "Valid email is required")
	}
	if !Phone(s.Phone) {
		errs = append(errs, "Valid phone number is required")
	}

	return errs
}

func Customer(c models.Customer) []string {
	var errs []string

	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "Customer name is required")
	}
	if !Email(c.Email) {
		errs = append(errs, "Valid email is required")
	}
	if !Phone(c.Phone) {
		errs = append(errs, "Valid phone number is required")
	}

	return errs
}
